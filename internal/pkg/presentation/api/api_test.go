package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/events"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/ingest"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/notifications"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/rules"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/router"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/matryer/is"
	"github.com/shopspring/decimal"
)

type services struct {
	ingest     *ingest.IngestServiceMock
	rules      *rules.RuleServiceMock
	events     *events.EventServiceMock
	dispatcher *notifications.DispatcherMock
}

func testServer(t *testing.T) (*httptest.Server, *services) {
	t.Helper()

	svcs := &services{
		ingest:     &ingest.IngestServiceMock{},
		rules:      &rules.RuleServiceMock{},
		events:     &events.EventServiceMock{},
		dispatcher: &notifications.DispatcherMock{},
	}

	mux, err := RegisterHandlers(context.Background(), router.New("testing"), svcs.ingest, svcs.rules, svcs.events, svcs.dispatcher)
	if err != nil {
		t.Fatal(err)
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server, svcs
}

func TestHealthEndpoint(t *testing.T) {
	is := is.New(t)

	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/health")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
}

func TestPostTelemetryReturnsCreated(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.ingest.AcceptFunc = func(ctx context.Context, in ingest.IncomingReading) (types.Reading, error) {
		return types.Reading{ID: 1, DeviceID: "device-01", Value: in.Value}, nil
	}

	body, _ := json.Marshal(ingest.IncomingReading{SerialNumber: "SN-0001", Value: decimal.NewFromFloat(4.2)})

	resp, err := http.Post(server.URL+"/api/v0/telemetry", "application/json", bytes.NewReader(body))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusCreated)
	is.Equal(len(svcs.ingest.AcceptCalls()), 1)
	is.Equal(svcs.ingest.AcceptCalls()[0].In.SerialNumber, "SN-0001")
}

func TestPostTelemetryUnknownDeviceIs404(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.ingest.AcceptFunc = func(ctx context.Context, in ingest.IncomingReading) (types.Reading, error) {
		return types.Reading{}, ingest.ErrDeviceNotFound
	}

	body, _ := json.Marshal(ingest.IncomingReading{SerialNumber: "SN-9999", Value: decimal.NewFromFloat(4.2)})

	resp, err := http.Post(server.URL+"/api/v0/telemetry", "application/json", bytes.NewReader(body))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestPostTelemetryInvalidReadingIs400(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.ingest.AcceptFunc = func(ctx context.Context, in ingest.IncomingReading) (types.Reading, error) {
		return types.Reading{}, ingest.ErrInvalidReading
	}

	resp, err := http.Post(server.URL+"/api/v0/telemetry", "application/json", bytes.NewReader([]byte(`{}`)))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestCreateRuleReturnsCreated(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.CreateFunc = func(ctx context.Context, rule types.Rule) (types.Rule, error) {
		rule.ID = "rule-01"
		return rule, nil
	}

	body := []byte(`{"deviceID":"device-01","name":"excessive vibration","operator":"gt","threshold":"8.5","cooldownMinutes":15}`)

	resp, err := http.Post(server.URL+"/api/v0/rules", "application/json", bytes.NewReader(body))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusCreated)

	var created types.Rule
	is.NoErr(json.NewDecoder(resp.Body).Decode(&created))
	is.Equal(created.ID, "rule-01")
}

func TestCreateRuleValidationFailureIs400(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.CreateFunc = func(ctx context.Context, rule types.Rule) (types.Rule, error) {
		return types.Rule{}, rules.ErrInvalidRule
	}

	resp, err := http.Post(server.URL+"/api/v0/rules", "application/json", bytes.NewReader([]byte(`{"operator":"between"}`)))
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestGetRuleNotFoundIs404(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.GetByIDFunc = func(ctx context.Context, ruleID string) (types.Rule, error) {
		return types.Rule{}, rules.ErrRuleNotFound
	}

	resp, err := http.Get(server.URL + "/api/v0/rules/no-such-rule")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNotFound)
}

func TestQueryRulesPassesDeviceFilter(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.QueryFunc = func(ctx context.Context, deviceID string, offset, limit int) (types.Collection[types.Rule], error) {
		return types.Collection[types.Rule]{Data: []types.Rule{{ID: "rule-01"}}, Count: 1, TotalCount: 1}, nil
	}

	resp, err := http.Get(server.URL + "/api/v0/rules?deviceID=device-01&offset=0&limit=10")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(svcs.rules.QueryCalls()[0].DeviceID, "device-01")
	is.Equal(svcs.rules.QueryCalls()[0].Limit, 10)

	var result struct {
		Data []types.Rule `json:"data"`
		Meta struct {
			TotalCount uint64 `json:"totalCount"`
		} `json:"meta"`
	}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&result))
	is.Equal(len(result.Data), 1)
	is.Equal(result.Meta.TotalCount, uint64(1))
}

func TestPatchRuleTogglesEnabled(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.SetEnabledFunc = func(ctx context.Context, ruleID string, enabled bool) error {
		return nil
	}

	resp := doPatch(t, server.URL+"/api/v0/rules/rule-01", `{"enabled":false}`)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(svcs.rules.SetEnabledCalls()[0].RuleID, "rule-01")
	is.Equal(svcs.rules.SetEnabledCalls()[0].Enabled, false)
}

func TestPatchRuleWithoutEnabledIs400(t *testing.T) {
	is := is.New(t)

	server, _ := testServer(t)

	resp := doPatch(t, server.URL+"/api/v0/rules/rule-01", `{"name":"renamed"}`)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestDeleteRule(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.rules.DeleteFunc = func(ctx context.Context, ruleID string) error { return nil }

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/api/v0/rules/rule-01", nil)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(svcs.rules.DeleteCalls()[0].RuleID, "rule-01")
}

func TestQueryEventsPassesFilters(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.events.QueryFunc = func(ctx context.Context, ruleID, status, severity string, offset, limit int) (types.Collection[types.Event], error) {
		return types.Collection[types.Event]{}, nil
	}

	resp, err := http.Get(server.URL + "/api/v0/events?ruleID=rule-01&status=new&severity=critical")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	call := svcs.events.QueryCalls()[0]
	is.Equal(call.RuleID, "rule-01")
	is.Equal(call.Status, "new")
	is.Equal(call.Severity, "critical")
}

func TestGetEventWithBadIDIs400(t *testing.T) {
	is := is.New(t)

	server, _ := testServer(t)

	resp, err := http.Get(server.URL + "/api/v0/events/not-a-number")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestPatchEventAcknowledges(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.events.AcknowledgeFunc = func(ctx context.Context, eventID int64) error { return nil }

	resp := doPatch(t, server.URL+"/api/v0/events/42", `{"status":"acknowledged"}`)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(svcs.events.AcknowledgeCalls()[0].EventID, int64(42))
}

func TestPatchEventResolves(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.events.ResolveFunc = func(ctx context.Context, eventID int64) error { return nil }

	resp := doPatch(t, server.URL+"/api/v0/events/42", `{"status":"resolved"}`)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusNoContent)
	is.Equal(svcs.events.ResolveCalls()[0].EventID, int64(42))
}

func TestPatchEventRejectsUnknownStatus(t *testing.T) {
	is := is.New(t)

	server, _ := testServer(t)

	resp := doPatch(t, server.URL+"/api/v0/events/42", `{"status":"ignored"}`)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusBadRequest)
}

func TestQueryDeliveriesPassesFilters(t *testing.T) {
	is := is.New(t)

	server, svcs := testServer(t)
	svcs.dispatcher.DeliveriesFunc = func(ctx context.Context, eventID int64, status string, offset, limit int) (types.Collection[types.Delivery], error) {
		return types.Collection[types.Delivery]{}, nil
	}

	resp, err := http.Get(server.URL + "/api/v0/deliveries?eventID=42&status=failed")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusOK)
	call := svcs.dispatcher.DeliveriesCalls()[0]
	is.Equal(call.EventID, int64(42))
	is.Equal(call.Status, "failed")
}

func doPatch(t *testing.T, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}

	return resp
}
