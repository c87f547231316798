package boa

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/boa")
