package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NewReference builds the human-readable booking reference, e.g.
// "BK-rosewood-gardens-3f1a9c2b". Generated once at creation, never changed.
func NewReference(serviceName string) string {
	short := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("BK-%s-%s", slug.Make(serviceName), short)
}
