package authority

import (
	"context"
	"fmt"

	"github.com/hnrobert/lumauth/internal/auth"
)

func verifyWithSu(context.Context, string, string) (bool, error) {
	return false, fmt.Errorf("%w: su is not available on windows", auth.ErrBackend)
}
