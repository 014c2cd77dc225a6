package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"printfolio/internal/service"
)

type RelayUsecase struct {
	mistral service.MistralServiceInterface
	models  []string
}

func NewRelayUsecase(mistral service.MistralServiceInterface, models []string) *RelayUsecase {
	return &RelayUsecase{mistral: mistral, models: models}
}

// GeneratePortfolio walks the model tiers in order. The first non-empty
// completion wins. A capacity error moves on to the next tier; any other
// error aborts the walk and is reported as-is.
func (uc *RelayUsecase) GeneratePortfolio(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for _, m := range uc.models {
		generated, err := uc.mistral.Complete(ctx, m, prompt)
		if err == nil {
			if strings.TrimSpace(generated) != "" {
				return generated, nil
			}
			lastErr = fmt.Errorf("model %s returned an empty completion", m)
			continue
		}
		lastErr = err
		if errors.Is(err, service.ErrModelCapacity) {
			log.Printf("capacity exceeded for %s, trying next model", m)
			continue
		}
		break
	}
	if lastErr == nil {
		lastErr = errors.New("no models configured")
	}
	return "", lastErr
}
