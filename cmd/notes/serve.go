package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/akeil/notetool/internal/logging"
	"github.com/akeil/notetool/pkg/memory"
	"github.com/akeil/notetool/pkg/server"
)

const shutdownTimeout = 5 * time.Second

func doServe(listen, path string) error {
	_, err := maxprocs.Set(maxprocs.Logger(logging.Logger().Infof))
	if err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         listen,
		Handler:      server.New(memory.NewRepository(), path).Handler(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fmt.Printf("%v serving notes on %v%v\n", checkmark, listen, path)
		err := srv.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})
	group.Go(func() error {
		<-ctx.Done()
		logging.Info("Shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	return group.Wait()
}
