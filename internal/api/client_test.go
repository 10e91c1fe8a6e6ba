package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"hearth/internal/core"
	"hearth/internal/log"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{
		BaseURL: srv.URL,
		Logger:  quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, srv
}

func quietLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
	c, err := New(Config{BaseURL: "http://localhost:3001/", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.BaseURL() != "http://localhost:3001" {
		t.Fatalf("trailing slash not trimmed: %q", c.BaseURL())
	}
}

func TestErrorMessagePreference(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"server error field wins", 404, `{"error":"Not found"}`, "Not found"},
		{"unparseable body falls back to generic", 500, `<html>boom</html>`, genericNetworkMessage},
		{"empty body falls back to generic", 502, ``, genericNetworkMessage},
		{"missing field falls back to status line", 404, `{}`, "HTTP 404: Not Found"},
		{"empty field falls back to status line", 500, `{"error":""}`, "HTTP 500: Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, tc.body)
			}))

			_, err := client.ListBills(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.want {
				t.Fatalf("message = %q, want %q", err.Error(), tc.want)
			}
			status, ok := IsApplication(err)
			if !ok {
				t.Fatalf("expected application error, got %#v", err)
			}
			if status != tc.status {
				t.Fatalf("status = %d, want %d", status, tc.status)
			}
		})
	}
}

func TestSuccessDecodesVerbatim(t *testing.T) {
	want := []Bill{
		{
			ID:          "b1",
			Name:        "Electric",
			AmountCents: 12050,
			DueDate:     "2024-03-15",
			SplitMode:   "equal",
			CreatedAt:   "2024-01-01T00:00:00Z",
			Splits: []Split{
				{ID: "s1", BillID: "b1", MemberID: "m1", Value: 0, CreatedAt: "2024-01-01T00:00:00Z"},
				{ID: "s2", BillID: "b1", MemberID: "m2", Value: 0, CreatedAt: "2024-01-01T00:00:00Z"},
			},
			Payments: []Payment{
				{
					ID: "p1", BillID: "b1", AmountCents: 12050, PaidDate: "2024-03-14",
					CreatedAt: "2024-03-14T09:00:00Z",
					Allocations: []Allocation{
						{ID: "a1", PaymentID: "p1", MemberID: "m1", AmountCents: 6025, CreatedAt: "2024-03-14T09:00:00Z"},
					},
				},
			},
		},
	}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/bills" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(want)
	}))

	got, err := client.ListBills(context.Background())
	if err != nil {
		t.Fatalf("ListBills: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("response mutated:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(Config{BaseURL: srv.URL, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv.Close()

	_, err = client.ListMembers(context.Background())
	if err == nil {
		t.Fatal("expected error against closed server")
	}
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %#v", err)
	}
	if _, ok := IsApplication(err); ok {
		t.Fatal("transport failure misclassified as application error")
	}
}

func TestRequestShape(t *testing.T) {
	type recorded struct {
		method, path, contentType string
		body                      []byte
	}
	var last recorded

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = recorded{r.Method, r.URL.Path, r.Header.Get("Content-Type"), body}
		io.WriteString(w, `{}`)
	}))
	ctx := context.Background()

	_, err := client.CreateMember(ctx, CreateMemberInput{Name: "Sam"})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	if last.method != http.MethodPost || last.path != "/api/members" {
		t.Fatalf("CreateMember sent %s %s", last.method, last.path)
	}
	if last.contentType != "application/json" {
		t.Fatalf("Content-Type = %q", last.contentType)
	}
	var payload map[string]any
	if err := json.Unmarshal(last.body, &payload); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if payload["name"] != "Sam" {
		t.Fatalf("payload = %v", payload)
	}

	if _, err := client.UpdateBill(ctx, "b1", UpdateBillInput{Name: "Gas", AmountCents: 100, SplitMode: "equal"}); err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}
	if last.method != http.MethodPut || last.path != "/api/bills/b1" {
		t.Fatalf("UpdateBill sent %s %s", last.method, last.path)
	}

	if err := client.DeleteRecurringBill(ctx, "r1"); err != nil {
		t.Fatalf("DeleteRecurringBill: %v", err)
	}
	if last.method != http.MethodDelete || last.path != "/api/recurring-bills/r1" {
		t.Fatalf("DeleteRecurringBill sent %s %s", last.method, last.path)
	}

	if _, err := client.ListMortgagePayments(ctx); err == nil {
		// {} decodes into a nil slice without error only for JSON arrays;
		// an object body is a decode failure and must surface as transport.
		t.Fatal("expected decode failure for object body")
	}

	if _, err := client.MarkFinancedPaymentPaid(ctx, "f1", "p9"); err != nil {
		t.Fatalf("MarkFinancedPaymentPaid: %v", err)
	}
	if last.method != http.MethodPost || last.path != "/api/financed-expenses/f1/payments/p9/mark-paid" {
		t.Fatalf("MarkFinancedPaymentPaid sent %s %s", last.method, last.path)
	}

	if _, err := client.UnmarkFinancedPaymentPaid(ctx, "f1", "p9"); err != nil {
		t.Fatalf("UnmarkFinancedPaymentPaid: %v", err)
	}
	if last.path != "/api/financed-expenses/f1/payments/p9/unmark-paid" {
		t.Fatalf("UnmarkFinancedPaymentPaid sent %s", last.path)
	}
}

func TestInputValidationShortCircuits(t *testing.T) {
	called := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	ctx := context.Background()

	if _, err := client.CreateMember(ctx, CreateMemberInput{Name: "  "}); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := client.CreateBill(ctx, CreateBillInput{Name: "x", AmountCents: 0, SplitMode: "equal"}); err == nil {
		t.Fatal("expected validation error for zero amount")
	}
	if _, err := client.CreateRecurringBill(ctx, CreateRecurringBillInput{
		Name: "x", AmountCents: 100, DayOfMonth: 32, Frequency: "monthly", SplitMode: "equal",
	}); err == nil {
		t.Fatal("expected validation error for day 32")
	}
	if _, err := client.CreateRecurringBill(ctx, CreateRecurringBillInput{
		Name: "x", AmountCents: 100, DayOfMonth: 1, Frequency: "weekly", SplitMode: "equal",
	}); err != core.ErrInvalidFrequency {
		t.Fatalf("expected ErrInvalidFrequency, got %v", err)
	}
	if called {
		t.Fatal("validation failures must not reach the server")
	}
}

func TestSecondDeleteSurfacesUniformError(t *testing.T) {
	deleted := map[string]bool{}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deleted[r.URL.Path] {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"error":"Bill not found"}`)
			return
		}
		deleted[r.URL.Path] = true
		io.WriteString(w, `{}`)
	}))
	ctx := context.Background()

	if err := client.DeleteBill(ctx, "b1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	err := client.DeleteBill(ctx, "b1")
	if err == nil {
		t.Fatal("second delete should surface the server's 404")
	}
	if err.Error() != "Bill not found" {
		t.Fatalf("message = %q", err.Error())
	}
	if status, ok := IsApplication(err); !ok || status != http.StatusNotFound {
		t.Fatalf("expected application 404, got %#v", err)
	}
}

func TestCallerHeadersMergeOverDefaults(t *testing.T) {
	var gotType, gotExtra string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		gotExtra = r.Header.Get("X-Request-Source")
		io.WriteString(w, `[]`)
	}))

	header := http.Header{}
	header.Set("X-Request-Source", "test")
	var out []Member
	if err := client.do(context.Background(), http.MethodGet, "/members", header, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotType != "application/json" {
		t.Fatalf("default Content-Type lost: %q", gotType)
	}
	if gotExtra != "test" {
		t.Fatalf("caller header lost: %q", gotExtra)
	}
}
