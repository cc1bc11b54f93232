package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/klogio/klog"
)

func main() {
	logger := klog.NewLogger()

	// Small cap to demonstrate rotation
	if err := logger.Init("./logs", 20); err != nil {
		fmt.Println("logger running console-only:", err)
	}
	defer logger.Shutdown()

	logger.Info("application starting")
	logger.WarningConsole("this line stays off the disk")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				logger.Info("worker", worker, "tick", j)
			}
		}(i)
	}
	wg.Wait()

	logger.Error("pretend something went wrong:", fmt.Errorf("example failure"))

	if err := logger.Flush(time.Second); err != nil {
		fmt.Println("flush:", err)
	}

	stats := logger.Stats()
	fmt.Printf("processed=%d rotations=%d queue=%d\n",
		stats.TotalProcessed, stats.TotalRotations, stats.QueueDepth)
}
