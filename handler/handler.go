package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"movie-awards/internal/domain"
	"movie-awards/internal/usecase"
)

const (
	headerCorrelationID = "X-Correlation-Id"
	headerContentType   = "content-type"
	contentTypeJSON     = "application/json"

	paramMovieID   = "movieId"
	paramAwardBody = "awardBody"
	paramMin       = "min"

	msgMissingKey  = "Missing movieId or awardBody"
	msgNotFound    = "Award details not found"
	msgBelowMin    = "Request failed"
	msgInternal    = "internal error"
	errNameDefault = "InternalError"
)

// AwardLooker is the use case consumed by the handler.
type AwardLooker interface {
	Lookup(ctx context.Context, in usecase.LookupInput) (domain.AwardRecord, error)
}

type Handler struct {
	awards AwardLooker
	logger *slog.Logger
}

type messageResponse struct {
	Message string `json:"Message"`
}

type errorDetail struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func NewHandler(awards AwardLooker) (*Handler, error) {
	if awards == nil {
		return nil, errors.New("handler: award service must not be nil")
	}
	return &Handler{awards: awards, logger: slog.Default()}, nil
}

// Handle serves GET /movies/{movieId}/awards/{awardBody}?min=N. It never
// returns a non-nil error; every outcome is a JSON response.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	corrID := correlationID(req.Headers)
	logger := h.logger.With("correlation_id", corrID)
	logger.InfoContext(ctx, "request received",
		"route", req.RouteKey,
		"path", req.RawPath,
		"path_params", req.PathParameters,
		"query_params", req.QueryStringParameters,
	)

	rec, err := h.awards.Lookup(ctx, usecase.LookupInput{
		MovieID:   req.PathParameters[paramMovieID],
		AwardBody: req.PathParameters[paramAwardBody],
		MinAwards: req.QueryStringParameters[paramMin],
	})
	if err != nil {
		return failure(ctx, logger, corrID, err), nil
	}

	logger.InfoContext(ctx, "award found", "movie_id", rec.MovieID, "award_body", rec.AwardBody)
	return jsonResponse(http.StatusOK, corrID, rec.Attributes), nil
}

func failure(ctx context.Context, logger *slog.Logger, corrID string, err error) events.APIGatewayV2HTTPResponse {
	switch usecase.CodeOf(err) {
	case usecase.ErrorInvalidInput:
		logger.InfoContext(ctx, "rejected request", "reason", err.Error())
		return jsonResponse(http.StatusBadRequest, corrID, messageResponse{Message: msgMissingKey})
	case usecase.ErrorNotFound:
		logger.InfoContext(ctx, "award not found")
		return jsonResponse(http.StatusNotFound, corrID, messageResponse{Message: msgNotFound})
	case usecase.ErrorBelowThreshold:
		// Below-threshold records share the 400 status with malformed requests.
		logger.InfoContext(ctx, "award below requested minimum")
		return jsonResponse(http.StatusBadRequest, corrID, messageResponse{Message: msgBelowMin})
	default:
		logger.ErrorContext(ctx, "award lookup failed", "err", err)
		return jsonResponse(http.StatusInternalServerError, corrID, errorResponse{Error: describeError(err)})
	}
}

// describeError exposes the store's error code and message when there is one,
// and nothing else.
func describeError(err error) errorDetail {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return errorDetail{Name: apiErr.ErrorCode(), Message: apiErr.ErrorMessage()}
	}
	return errorDetail{Name: errNameDefault, Message: msgInternal}
}

func jsonResponse(status int, corrID string, payload any) events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(errorResponse{Error: errorDetail{Name: errNameDefault, Message: msgInternal}})
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: status,
		Headers: map[string]string{
			headerContentType:   contentTypeJSON,
			headerCorrelationID: corrID,
		},
		Body: string(body),
	}
}

func correlationID(headers map[string]string) string {
	for k, v := range headers {
		if strings.EqualFold(k, headerCorrelationID) && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return newCorrelationID()
}

var newCorrelationID = func() string {
	return uuid.NewString()
}
