package mocks

import "pms/infras/otel"

type noopScope struct{}

func (noopScope) End() {}

func (noopScope) TraceError(error) {}

func (noopScope) TraceIfError(error) {}

func (noopScope) AddEvent(string) {}

func (noopScope) SetAttribute(string, any) {}

func (noopScope) SetAttributes(map[string]any) {}

func NewScope() otel.Scope {
	return noopScope{}
}
