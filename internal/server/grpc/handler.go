package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	if err := s.auth.Register(ctx, req.User, req.Y1, req.Y2); err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	authID, c, err := s.auth.CreateChallenge(ctx, req.User, req.R1, req.R2)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &pb.AuthenticationChallengeResponse{AuthId: authID, C: c}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	sessionID, err := s.auth.VerifyAnswer(ctx, req.AuthId, req.S)
	if err != nil {
		return nil, s.rpcError(ctx, err)
	}

	return &pb.AuthenticationAnswerResponse{SessionId: sessionID}, nil
}

// rpcError translates service sentinels into gRPC status codes. The bad
// solution message deliberately does not say which equation failed.
func (s *GRPCServer) rpcError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, common.ErrChallengeNotFound):
		return status.Error(codes.NotFound, "challenge not found")
	case errors.Is(err, common.ErrBadSolution):
		return status.Error(codes.PermissionDenied, "bad solution")
	case errors.Is(err, common.ErrUserExists):
		return status.Error(codes.AlreadyExists, "user already registered")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
