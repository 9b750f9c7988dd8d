package bootstrap

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/projects-service/internal/auth"
)

// BlocklistSweepSpec runs the in-memory blocklist sweep every five minutes.
const BlocklistSweepSpec = "0 */5 * * * *"

// StartBlocklistSweeper purges expired revocations from the in-memory blocklist.
// The returned scheduler must be stopped on shutdown.
func StartBlocklistSweeper(b *auth.MemoryBlocklist, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(BlocklistSweepSpec, func() {
		if n := b.Purge(); n > 0 {
			logger.Debug("purged expired token revocations", zap.Int("count", n))
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
