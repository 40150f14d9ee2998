package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmtumanov/beanline-backend/api/responses"
	pkgerrors "github.com/dmtumanov/beanline-backend/pkg/errors"
	"github.com/dmtumanov/beanline-backend/pkg/logger"
	pkgredis "github.com/dmtumanov/beanline-backend/pkg/redis"
)

// Checkout submissions keep their idempotency record for a week; an order
// that reached the host must never be replayed.
const checkoutIdempotencyTTL = 7 * 24 * time.Hour

const checkoutPath = "/api/v1/checkout"

type idempotencyRecord struct {
	Status      int    `json:"status"`
	Body        string `json:"body"`
	RequestHash string `json:"request_hash"`
}

// Idempotency replays the stored response when a checkout is retried with
// the same Idempotency-Key, and refuses key reuse with a different body.
func Idempotency(store pkgredis.IdempotencyStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store == nil || r.Method != http.MethodPost || r.URL.Path != checkoutPath {
				next.ServeHTTP(w, r)
				return
			}

			idempotencyKey := strings.TrimSpace(r.Header.Get("Idempotency-Key"))
			if idempotencyKey == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "Idempotency-Key header required"))
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read request"))
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			requestHash := hashBody(body)
			key := store.IdempotencyKey(scopeFor(r), idempotencyKey)

			stored, getErr := store.Get(r.Context(), key)
			if getErr != nil && !errors.Is(getErr, redis.Nil) {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, getErr, "check idempotency"))
				return
			}
			if stored != "" {
				record, decodeErr := decodeRecord(stored)
				if decodeErr != nil {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.Wrap(pkgerrors.CodeDependency, decodeErr, "decode idempotency record"))
					return
				}
				if record.RequestHash != requestHash {
					responses.WriteError(r.Context(), logg, w,
						pkgerrors.New(pkgerrors.CodeIdempotency, "idempotency key reused with different request body"))
					return
				}
				writeStoredResponse(w, record)
				return
			}

			rec := &responseCapture{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			// Retryable outcomes must not pin the key: a 5xx submission
			// failure or the in-flight 409 invites a retry with the same
			// key, and that retry has to reach the handler.
			if !cacheableStatus(defaultStatus(rec.status)) {
				return
			}

			record := idempotencyRecord{
				Status:      defaultStatus(rec.status),
				Body:        base64.StdEncoding.EncodeToString(rec.body.Bytes()),
				RequestHash: requestHash,
			}
			encoded, encodeErr := json.Marshal(record)
			if encodeErr != nil {
				if logg != nil {
					logg.Error(r.Context(), "encode idempotency record", encodeErr)
				}
				return
			}
			if _, setErr := store.SetNX(r.Context(), key, string(encoded), checkoutIdempotencyTTL); setErr != nil {
				if logg != nil {
					logg.Error(r.Context(), "store idempotency record", setErr)
				}
			}
		})
	}
}

// scopeFor keys idempotency records per customer so two customers can use
// the same key value without colliding.
func scopeFor(r *http.Request) string {
	customerKey := CustomerKeyFromContext(r.Context())
	if customerKey == "" {
		customerKey = strings.TrimSpace(r.Header.Get(customerIDHeader))
	}
	return "checkout:" + customerKey
}

func hashBody(body []byte) string {
	sum := sha256.Sum256(body)
	return base64.StdEncoding.EncodeToString(sum[:])
}

func decodeRecord(stored string) (idempotencyRecord, error) {
	var record idempotencyRecord
	if err := json.Unmarshal([]byte(stored), &record); err != nil {
		return idempotencyRecord{}, err
	}
	return record, nil
}

func writeStoredResponse(w http.ResponseWriter, record idempotencyRecord) {
	decoded, err := base64.StdEncoding.DecodeString(record.Body)
	if err != nil {
		decoded = nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Idempotent-Replay", "true")
	w.WriteHeader(defaultStatus(record.Status))
	_, _ = w.Write(decoded)
}

func cacheableStatus(status int) bool {
	return status < http.StatusInternalServerError && status != http.StatusConflict
}

func defaultStatus(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}

type responseCapture struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseCapture) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseCapture) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}
