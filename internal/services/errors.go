package services

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GatewayKind buckets Gemini call failures so callers and tests can
// tell causes apart even though the chat endpoint reports them all with
// the same status code.
type GatewayKind string

const (
	GatewayAuth    GatewayKind = "auth"
	GatewayQuota   GatewayKind = "quota"
	GatewayNetwork GatewayKind = "network"
	GatewayBlocked GatewayKind = "blocked"
	GatewayUnknown GatewayKind = "unknown"
)

// GatewayError wraps a failure from the generative language API with
// its classified kind.
type GatewayError struct {
	Kind GatewayKind
	Err  error
}

func (e *GatewayError) Error() string {
	return e.Err.Error()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// classifyGatewayError assigns a kind from the transport error shape.
// The Gemini client surfaces REST failures as *googleapi.Error and gRPC
// failures as status errors; anything else that smells like the network
// is classified as such, and the rest stays unknown.
func classifyGatewayError(err error) *GatewayError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &GatewayError{Kind: GatewayAuth, Err: err}
		case http.StatusTooManyRequests:
			return &GatewayError{Kind: GatewayQuota, Err: err}
		}
		return &GatewayError{Kind: GatewayUnknown, Err: err}
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return &GatewayError{Kind: GatewayAuth, Err: err}
		case codes.ResourceExhausted:
			return &GatewayError{Kind: GatewayQuota, Err: err}
		case codes.Unavailable, codes.DeadlineExceeded:
			return &GatewayError{Kind: GatewayNetwork, Err: err}
		}
		return &GatewayError{Kind: GatewayUnknown, Err: err}
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &GatewayError{Kind: GatewayNetwork, Err: err}
	}

	return &GatewayError{Kind: GatewayUnknown, Err: err}
}
