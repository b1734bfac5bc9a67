package fx

import (
	"github.com/orgball2608/subscraper/internal/repositories/media"
	"go.uber.org/fx"
)

var Module = fx.Options(
	media.Module,
)
