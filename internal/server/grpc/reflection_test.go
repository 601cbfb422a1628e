package grpcserver

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/and161185/vidshare/internal/api"
)

func TestRegisterReflection_ListsDescribedServicesOnly(t *testing.T) {
	s := grpc.NewServer()
	t.Cleanup(s.Stop)
	Register(s, New(Services{}, nil))
	healthpb.RegisterHealthServer(s, health.NewServer())
	RegisterReflection(s)

	require.Contains(t, s.GetServiceInfo(), api.ServiceName)

	listed := describedServices{s}.GetServiceInfo()
	require.NotContains(t, listed, api.ServiceName)
	require.Contains(t, listed, healthpb.Health_ServiceDesc.ServiceName)
	require.Contains(t, listed, "grpc.reflection.v1.ServerReflection")
}
