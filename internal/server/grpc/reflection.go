package grpcserver

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"

	"github.com/and161185/vidshare/internal/api"
)

// describedServices hides VidShare from reflection: its descriptor is
// hand-written and JSON-coded, so there is no file descriptor to serve.
type describedServices struct {
	reflection.ServiceInfoProvider
}

func (d describedServices) GetServiceInfo() map[string]grpc.ServiceInfo {
	out := map[string]grpc.ServiceInfo{}
	for name, info := range d.ServiceInfoProvider.GetServiceInfo() {
		if name == api.ServiceName {
			continue
		}
		out[name] = info
	}
	return out
}

// RegisterReflection serves grpc.reflection.v1 for the proto-described
// services on s (health, reflection itself).
func RegisterReflection(s *grpc.Server) {
	srv := reflection.NewServerV1(reflection.ServerOptions{Services: describedServices{s}})
	reflectionpb.RegisterServerReflectionServer(s, srv)
}
