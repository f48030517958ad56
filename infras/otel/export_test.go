package otel

var ToAttribute = toAttribute
