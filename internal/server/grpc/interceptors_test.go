package grpcserver

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/and161185/vidshare/internal/api"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	ic := LoggingUnary(zap.New(core))
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Method"}

	resp, err := ic(ctx, "req", info, func(context.Context, any) (any, error) { return "ok", nil })
	require.NoError(t, err)
	require.Equal(t, "ok", resp)

	wantErr := status.Error(codes.Unavailable, "store unavailable")
	_, err = ic(ctx, "req", info, func(context.Context, any) (any, error) { return nil, wantErr })
	require.Equal(t, wantErr, err)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, "/test.Service/Method", first["method"])
	require.Equal(t, "OK", first["code"])
	require.Equal(t, "127.0.0.1:12345", first["peer"])
	require.NotContains(t, first, "req")

	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, "Unavailable", entries[1].ContextMap()["code"])
}

func TestLevelFor(t *testing.T) {
	require.Equal(t, zap.InfoLevel, levelFor(codes.OK))
	require.Equal(t, zap.InfoLevel, levelFor(codes.NotFound))
	require.Equal(t, zap.InfoLevel, levelFor(codes.InvalidArgument))
	require.Equal(t, zap.WarnLevel, levelFor(codes.Internal))
	require.Equal(t, zap.WarnLevel, levelFor(codes.Unavailable))
}

func TestRecoverUnary(t *testing.T) {
	t.Parallel()

	ic := RecoverUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/test.Service/Panic"}

	resp, err := ic(context.Background(), "req", info, func(context.Context, any) (any, error) {
		panic("oh no")
	})
	require.Nil(t, resp)
	require.Equal(t, codes.Internal, status.Code(err))

	resp, err = ic(context.Background(), "req", info, func(context.Context, any) (any, error) { return 42, nil })
	require.NoError(t, err)
	require.Equal(t, 42, resp)
}

type stubVerifier struct {
	id    uuid.UUID
	calls int
}

func (s *stubVerifier) VerifyToken(token string) (uuid.UUID, error) {
	s.calls++
	if token != "good" {
		return uuid.Nil, errors.New("bad token")
	}
	return s.id, nil
}

func withBearer(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	v := &stubVerifier{id: uuid.Must(uuid.NewV4())}
	ic := AuthUnary(v, api.PublicMethods)

	var seen uuid.UUID
	h := func(ctx context.Context, _ any) (any, error) {
		seen = actor(ctx)
		return "ok", nil
	}
	private := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodToggleVideoLike)}
	public := &grpc.UnaryServerInfo{FullMethod: api.FullMethod(api.MethodListVideos)}
	health := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := ic(context.Background(), nil, private, h)
	require.Equal(t, codes.Unauthenticated, status.Code(err))
	_, err = ic(withBearer("bad"), nil, private, h)
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = ic(withBearer("good"), nil, private, h)
	require.NoError(t, err)
	require.Equal(t, v.id, seen)

	seen = uuid.Nil
	_, err = ic(context.Background(), nil, public, h)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, seen)

	_, err = ic(withBearer("good"), nil, public, h)
	require.NoError(t, err)
	require.Equal(t, v.id, seen, "public call keeps a valid identity")

	seen = uuid.Nil
	_, err = ic(withBearer("bad"), nil, public, h)
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, seen)

	before := v.calls
	_, err = ic(withBearer("good"), nil, health, h)
	require.NoError(t, err)
	require.Equal(t, before, v.calls, "foreign services skip verification")
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header []string
		want   string
		found  bool
	}{
		{"canonical", []string{"Bearer abc.def.ghi"}, "abc.def.ghi", true},
		{"lowercase scheme", []string{"bearer xyz"}, "xyz", true},
		{"extra spaces", []string{"  Bearer   tok  "}, "tok", true},
		{"other scheme", []string{"Basic foo"}, "", false},
		{"empty token", []string{"Bearer   "}, "", false},
		{"second value", []string{"Basic foo", "Bearer tok2"}, "tok2", true},
		{"none", nil, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			md := metadata.MD{}
			for _, h := range c.header {
				md.Append("authorization", h)
			}
			got, found := bearerToken(metadata.NewIncomingContext(context.Background(), md))
			require.Equal(t, c.found, found)
			require.Equal(t, c.want, got)
		})
	}

	_, found := bearerToken(context.Background())
	require.False(t, found)
}
