package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/fairwaypool/golf-pickem/internal/usecase"
)

// maxRequestBytes caps request bodies; provider documents are the largest
// accepted payloads and stay well under this.
const maxRequestBytes = 4 << 20

func decodeJSONBody(r *http.Request, out any) error {
	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func readRawBody(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: request body is empty", usecase.ErrInvalidInput)
	}

	return raw, nil
}
