package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

type OfferScanner interface {
	RolloverOffers(ctx context.Context) ([]service.RolloverOffer, error)
}

// Notifier receives each owner with an unclaimed carry-over.
type Notifier func(offer service.RolloverOffer)

// LogNotifier writes offers to the standard logger.
func LogNotifier(offer service.RolloverOffer) {
	log.Printf("owner %d can carry over %s from last month", offer.OwnerID, offer.Rollover.PreviousBalance)
}

// RunRolloverScan finds every owner with a positive balance left in the
// previous month and hands it to notify.
func RunRolloverScan(ctx context.Context, scanner OfferScanner, notify Notifier) (int, error) {
	offers, err := scanner.RolloverOffers(ctx)
	if err != nil {
		return 0, fmt.Errorf("rollover scan: %w", err)
	}
	for _, o := range offers {
		notify(o)
	}
	return len(offers), nil
}

// ScheduleRolloverNotices runs the scan on spec (standard five-field cron) in
// loc. The caller stops the returned cron.
func ScheduleRolloverNotices(spec string, loc *time.Location, scanner OfferScanner, notify Notifier) (*cron.Cron, error) {
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		n, err := RunRolloverScan(ctx, scanner, notify)
		if err != nil {
			log.Printf("Rollover scan failed: %v", err)
			return
		}
		log.Printf("Rollover scan finished, %d owners with a carry-over", n)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule rollover scan %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}
