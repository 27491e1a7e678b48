package calculator

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"hole-distance/internal/models"
)

// Universe is the inclusive range of hole numbers expected in the input.
type Universe struct {
	First int
	Last  int
}

// DefaultUniverse covers holes 1 through 100.
var DefaultUniverse = Universe{First: 1, Last: 100}

func (u Universe) Validate() error {
	if u.First < 0 {
		return fmt.Errorf("universe start %d is negative", u.First)
	}
	if u.First > u.Last {
		return fmt.Errorf("universe start %d is after end %d", u.First, u.Last)
	}
	return nil
}

func (u Universe) Size() int {
	return u.Last - u.First + 1
}

// Reconcile walks the universe in order and pairs the tee and target point of
// every hole. summary carries the label totals from extraction; the returned
// report adds the missing count.
func Reconcile(table models.PointTable, summary models.Summary, u Universe, log zerolog.Logger) models.Report {
	results := make([]models.Result, 0, u.Size())

	for i := u.First; i <= u.Last; i++ {
		res := reconcileHole(table, strconv.Itoa(i))
		if res.Outcome != models.OutcomeComplete {
			summary.Missing++
			log.Debug().
				Str("hole", res.Number).
				Str("outcome", string(res.Outcome)).
				Msg("Incomplete hole")
		}
		results = append(results, res)
	}

	return models.Report{Results: results, Summary: summary}
}

func reconcileHole(table models.PointTable, number string) models.Result {
	res := models.Result{Number: number}

	if _, ok := table[number]; !ok {
		res.Outcome = models.OutcomeMissing
		return res
	}

	tee, ok := table.Lookup(number, models.LabelTee)
	if !ok {
		res.Outcome = models.OutcomeMissingTee
		return res
	}
	res.Coordinates = tee.Display

	target, ok := table.Lookup(number, models.LabelTarget)
	if !ok {
		res.Outcome = models.OutcomePartialTee
		return res
	}

	res.Outcome = models.OutcomeComplete
	length := RoundMeters(Haversine(tee.Lat, tee.Lon, target.Lat, target.Lon))
	res.Length = &length
	return res
}
