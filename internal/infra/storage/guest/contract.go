package guest

import (
	"github.com/hotelpms/reservation-service/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access.
type DBExecutor = dbmetrics.DBExecutor
