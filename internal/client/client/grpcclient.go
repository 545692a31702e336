// Package client wraps the generated gRPC stub for the zkp_auth service and
// maps transport status codes back onto the shared sentinel errors.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

func NewAuthClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

// Register sends the public commitment (y1, y2) for userName.
func (s *GRPCClient) Register(ctx context.Context, userName string, y1, y2 []byte) error {

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := &pb.RegisterRequest{User: userName, Y1: y1, Y2: y2}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err, common.ErrUserNotFound)
	}

	return nil
}

// CreateChallenge opens an authentication attempt with the round commitment
// (r1, r2) and returns the auth ID and the encoded challenge.
func (s *GRPCClient) CreateChallenge(ctx context.Context, userName string, r1, r2 []byte) (string, []byte, error) {

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{User: userName, R1: r1, R2: r2}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err, common.ErrUserNotFound)
	}

	return resp.AuthId, resp.C, nil
}

// VerifyAnswer submits the response for authID and returns the session ID.
func (s *GRPCClient) VerifyAnswer(ctx context.Context, authID string, answer []byte) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: answer}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return "", s.mapError(err, common.ErrChallengeNotFound)
	}

	return resp.SessionId, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError translates a status error into the matching sentinel. NotFound is
// ambiguous on the wire, so the caller supplies the sentinel that fits the
// operation.
func (s *GRPCClient) mapError(err error, notFound error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return common.ErrInvalidInput
	case codes.NotFound:
		return notFound
	case codes.PermissionDenied:
		return common.ErrBadSolution
	case codes.AlreadyExists:
		return common.ErrUserExists
	case codes.Unavailable:
		return common.ErrUnavailable
	default:
		return err
	}
}
