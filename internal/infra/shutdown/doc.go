// Package shutdown coordinates process termination.
//
// It turns SIGINT and SIGTERM into context cancellation and runs cleanup
// hooks, such as flushing metrics or saving shell history, exactly once.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(flush)
//	defer h.Run()
package shutdown
