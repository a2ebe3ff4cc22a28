package badge

import (
	"context"

	"github.com/lepetitglacon/moyenne-sub000/internal/entity"
	"github.com/lepetitglacon/moyenne-sub000/internal/model"
	"github.com/lepetitglacon/moyenne-sub000/internal/repository"
	"github.com/lepetitglacon/moyenne-sub000/pkg/errorx"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type Manager struct {
	// This field is only written at initialization. After that, it is
	// readonly.
	scanners map[string]Scanner
	families []string

	badgeRepo repository.BadgeRepository
}

func NewManager(badgeRepo repository.BadgeRepository, scanners ...Scanner) *Manager {
	manager := &Manager{
		scanners:  make(map[string]Scanner),
		badgeRepo: badgeRepo,
	}

	for _, s := range scanners {
		manager.scanners[s.Family()] = s
		manager.families = append(manager.families, s.Family())
	}

	return manager
}

func (m *Manager) WithBadges(families ...string) *contextManager {
	return &contextManager{manager: m, families: families}
}

type contextManager struct {
	manager  *Manager
	families []string
}

// ScanAndGive evaluates the selected families against the user's current
// signals and awards every badge whose threshold is met. The insert is
// conflict-tolerant, so evaluating the same signal twice awards at most
// once; only freshly written badges are returned.
func (c *contextManager) ScanAndGive(ctx context.Context, userID int64) ([]entity.BadgeName, error) {
	newBadges := []entity.BadgeName{}
	for _, family := range c.families {
		scanner, ok := c.manager.scanners[family]
		if !ok {
			xcontext.Logger(ctx).Errorf("Not found badge family %s", family)
			return nil, errorx.Unknown
		}

		signal, err := scanner.Signal(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot scan %s badges: %v", family, err)
			return nil, errorx.Unknown
		}

		for _, threshold := range scanner.Thresholds() {
			if signal < threshold.Value {
				break
			}

			created, err := c.manager.badgeRepo.Award(ctx, &entity.Badge{
				UserID:   userID,
				Name:     threshold.Name,
				Metadata: entity.Map{"value": signal},
			})
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot give badge to user: %v", err)
				return nil, errorx.Unknown
			}

			if created {
				newBadges = append(newBadges, threshold.Name)
			}
		}
	}

	return newBadges, nil
}

// Progress reports, for every registered family, how far the user is from
// each badge of that family.
func (m *Manager) Progress(ctx context.Context, userID int64) ([]model.BadgeProgress, error) {
	progress := []model.BadgeProgress{}
	for _, family := range m.families {
		scanner := m.scanners[family]

		signal, err := scanner.Signal(ctx, userID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot scan %s badges: %v", family, err)
			return nil, errorx.Unknown
		}

		for _, threshold := range scanner.Thresholds() {
			progress = append(progress, model.BadgeProgress{
				Name:      string(threshold.Name),
				Threshold: threshold.Value,
				Current:   signal,
				Earned:    signal >= threshold.Value,
			})
		}
	}

	return progress, nil
}
