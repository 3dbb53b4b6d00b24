package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/acervo-api/internal/config"
	"github.com/saulo-duarte/acervo-api/internal/container"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var port string

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Inicia a API HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}
	serve.Flags().StringVarP(&port, "port", "p", "", "porta HTTP (padrão: PORT ou 3000)")

	root := &cobra.Command{
		Use:           "acervo-api",
		Short:         "API de questões e filmes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.Flags().AddFlagSet(serve.Flags())

	root.AddCommand(serve, &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return root
}

func runServe(ctx context.Context, port string) error {
	settings := config.Load()
	config.Init(settings)
	if port != "" {
		settings.Port = port
	}

	c := container.New(settings)
	defer c.Provider.Close()

	handler := c.Router()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		logrus.Info("Executando como função Lambda")
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + settings.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Serviço rodando na porta: %s", settings.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logrus.Info("Encerrando servidor")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
