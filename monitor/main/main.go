package main

import (
	"fmt"
	"os"
	"os/signal"
	"store-monitor/logger"
	"store-monitor/monitor/context"
	"store-monitor/monitor/cronjob"
	"store-monitor/monitor/shared"
	"syscall"
)

func main() {
	ctx, err := context.BuildContext()
	if err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, os.Interrupt, syscall.SIGTERM)

	// Prometheus metrics
	shared.InitMetricsServer(&ctx.Config().Metrics)

	go cronjob.RunCronjob(cronjob.NewPollerCronjob(ctx))
	go cronjob.RunCronjob(cronjob.NewReportsCronjob(ctx))

	<-cancelChan
	logger.Info("Stopped store monitor")
}
