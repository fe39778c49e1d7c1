package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"campus-roster/pkg/db"
)

func TestObserveTransaction(t *testing.T) {
	m := New("roster")

	m.ObserveTransaction("add course", db.OutcomeCommitted, 3*time.Millisecond)
	m.ObserveTransaction("add course", db.OutcomeCommitted, time.Millisecond)
	m.ObserveTransaction("add student", db.OutcomeRolledBack, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.transactionsTotal.WithLabelValues("add course", "committed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transactionsTotal.WithLabelValues("add student", "rolled_back")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "roster_transactions_total"))
}
