package field

import "github.com/Long0701/PitchSpot-BookingService/pkg/dbmetrics"

// Reuse the dbmetrics interfaces so the repository works over both *sql.DB
// and the instrumented wrapper
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
