package kafka_test

import (
	"pms/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
}

func TestMessage_RoundTrip(t *testing.T) {
	message := kafka.Message{Key: "booking-1", Value: auditEvent{EventID: "booking-1", EventType: "CHECKED_IN"}}

	msg, err := message.ToKafkaMessage("pms.audit")
	require.NoError(t, err)

	assert.Equal(t, "pms.audit", msg.Topic)
	assert.Equal(t, []byte("booking-1"), msg.Key)
	assert.JSONEq(t, `{"event_id":"booking-1","event_type":"CHECKED_IN"}`, string(msg.Value))

	key, value, err := kafka.DecodeKafkaMessage[auditEvent](msg)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", key)
	assert.Equal(t, "CHECKED_IN", value.EventType)
}

func TestMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage("pms.audit")
	assert.Error(t, err)
}
