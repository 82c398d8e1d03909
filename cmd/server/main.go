package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-grpc-hr/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-grpc-hr/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/company"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/employee"
	"github.com/ogurasousui/codex-grpc-hr/internal/core/hr"
	"github.com/ogurasousui/codex-grpc-hr/internal/platform/config"
	pg "github.com/ogurasousui/codex-grpc-hr/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-grpc-hr/internal/platform/logging"
	"github.com/ogurasousui/codex-grpc-hr/internal/platform/server"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadEnv(); err != nil {
		logrus.WithError(err).Fatal("failed to load .env")
	}

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		logrus.WithError(err).Fatal("failed to build logger")
	}

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize database pool")
	}
	defer dbPool.Close()

	directory := employee.NewService(postgres.NewEmployeeRepository(dbPool), pg.NewTransactionManager(dbPool))
	front := company.New(cfg.Company.Name, hr.NewService(nil), logger)
	grpcServer := server.New(cfg.Server.ListenAddr, handler.NewHumanResourceGrpcHandler(front, directory), logger)

	logger.WithFields(logrus.Fields{
		"listen_addr": cfg.Server.ListenAddr,
		"company":     cfg.Company.Name,
	}).Info("gRPC server listening")

	if err := grpcServer.Run(ctx); err != nil {
		logger.WithError(err).Fatal("server stopped with error")
	}

	logger.Info("gRPC server stopped")
}
