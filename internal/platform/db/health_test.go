package db

import (
	"encoding/json"
	"testing"
)

func TestHealthReport_Healthy(t *testing.T) {
	report := &HealthReport{Status: "healthy", Pool: &PoolStats{TotalConns: 2}}
	if !report.Healthy() {
		t.Error("expected a healthy report")
	}

	report.Status = "unhealthy"
	report.Error = "connection refused"
	if report.Healthy() {
		t.Error("expected an unhealthy report")
	}
}

func TestHealthReport_JSON(t *testing.T) {
	report := &HealthReport{
		Status: "healthy",
		Pool: &PoolStats{
			TotalConns:      8,
			IdleConns:       3,
			AcquiredConns:   5,
			MaxConns:        10,
			AcquireCount:    42,
			AcquireDuration: "250ms",
		},
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal report: %v", err)
	}

	var decoded HealthReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if decoded.Status != "healthy" || decoded.Error != "" {
		t.Errorf("unexpected status fields: %+v", decoded)
	}
	if decoded.Pool == nil || decoded.Pool.TotalConns != 8 || decoded.Pool.MaxConns != 10 {
		t.Errorf("unexpected pool snapshot: %+v", decoded.Pool)
	}
}
