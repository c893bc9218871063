package admin

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	audit "personnummer/pkg/platform/audit"
	"personnummer/pkg/platform/audit/publisher"
	"personnummer/pkg/platform/audit/store/memory"
	adminmw "personnummer/pkg/platform/middleware/admin"
	"personnummer/pkg/testutil"
)

type AdminHandlerSuite struct {
	suite.Suite
	router    chi.Router
	publisher *publisher.Publisher
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerSuite))
}

func (s *AdminHandlerSuite) SetupTest() {
	s.publisher = publisher.NewPublisher(memory.NewInMemoryStore())
	s.router = chi.NewRouter()
	New(s.publisher, slog.New(slog.DiscardHandler), "s3cret").Register(s.router)

	at := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	for i, action := range []audit.AuditEvent{audit.EventIdentityParsed, audit.EventIdentityRejected, audit.EventIdentityFormatted} {
		require.NoError(s.T(), s.publisher.Emit(context.Background(), audit.Event{
			Category:  action.Category(),
			Timestamp: at.Add(time.Duration(i) * time.Second),
			Action:    string(action),
			Decision:  "accepted",
			ClientIP:  "192.0.2.1",
		}))
	}
}

func (s *AdminHandlerSuite) TearDownTest() {
	s.publisher.Close()
}

func (s *AdminHandlerSuite) get(path, token string) *http.Request {
	req := testutil.NewRequestWithBody(s.T(), http.MethodGet, path, "")
	if token != "" {
		req.Header.Set(adminmw.HeaderAdminToken, token)
	}
	return req
}

func (s *AdminHandlerSuite) TestListAudit() {
	s.Run("requires the admin token", func() {
		rr := testutil.DoRequest(s.router, s.get("/admin/audit", ""))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("returns recent events oldest first", func() {
		rr := testutil.DoRequest(s.router, s.get("/admin/audit", "s3cret"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[AuditEventsResponse](s.T(), rr)
		s.Require().Equal(3, resp.Total)
		s.Equal(string(audit.EventIdentityParsed), resp.Events[0].Action)
		s.Equal(string(audit.CategoryCompliance), resp.Events[0].Category)
		s.Equal("192.0.2.1", resp.Events[0].ClientIP)
	})

	s.Run("limit keeps the newest events", func() {
		rr := testutil.DoRequest(s.router, s.get("/admin/audit?limit=1", "s3cret"))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)

		resp := testutil.UnmarshalResponse[AuditEventsResponse](s.T(), rr)
		s.Require().Len(resp.Events, 1)
		s.Equal(string(audit.EventIdentityFormatted), resp.Events[0].Action)
	})

	s.Run("rejects a bad limit", func() {
		for _, limit := range []string{"0", "-1", "abc", "1001"} {
			rr := testutil.DoRequest(s.router, s.get("/admin/audit?limit="+limit, "s3cret"))
			testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
		}
	})
}
