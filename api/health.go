package main

import (
	"fmt"
	"leaguedash/pkg/logger"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const healthService = "leaguedash.API"

// Start the grpc server exposing the health check of the API.
func startHealthServer(port string, log *logger.Logger) (*grpc.Server, *health.Server, error) {
	list, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't start the tcp listener: %w", err)
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	healthServer.SetServingStatus(healthService, grpc_health_v1.HealthCheckResponse_SERVING)

	go func() {
		log.Infof("Running gRPC health server on :%s", port)
		if err := grpcServer.Serve(list); err != nil {
			log.Errorf("gRPC health server stopped: %v", err)
		}
	}()

	return grpcServer, healthServer, nil
}
