package handlers

import (
	"errors"
	"net/http"

	"safarihub/models"
	"safarihub/payments"
	"safarihub/store"
	"safarihub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	dataStore     *store.Store
	paymentClient *payments.Client
)

func Init(s *store.Store, pc *payments.Client) {
	dataStore = s
	paymentClient = pc
}

func principalFromContext(c *gin.Context) (store.Principal, error) {
	claims, err := utils.VerifyJWT(c)
	if err != nil {
		return store.Principal{}, err
	}

	userIdStr, ok := claims["userId"].(string)
	if !ok {
		return store.Principal{}, errors.New("invalid userId in token")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return store.Principal{}, errors.New("invalid userId in token")
	}

	role, _ := claims["role"].(string)

	return store.Principal{UserID: userId, Role: models.Role(role)}, nil
}

func statusForKind(kind store.ErrorKind) int {
	switch kind {
	case store.KindNotFound:
		return http.StatusNotFound
	case store.KindConflict:
		return http.StatusConflict
	case store.KindForbidden:
		return http.StatusForbidden
	case store.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abortForKind(c *gin.Context, kind store.ErrorKind) {
	c.JSON(statusForKind(kind), gin.H{"error": kind.String()})
}

func recordSpanError(span trace.Span, kind store.ErrorKind) {
	err := errors.New(kind.String())
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
