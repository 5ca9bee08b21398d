// Package guarantee implements the guarantee classification engine:
// expiry calculation, status classification, billing determination and
// contractor liability assessment. Every function is pure; callers pass
// the evaluation time explicitly so results are deterministic.
package guarantee

import "time"

const day = 24 * time.Hour

// ExpiryResult describes the guarantee window relative to an evaluation time.
type ExpiryResult struct {
	ExpiresAt            time.Time
	DaysFromInstallation int
	IsExpired            bool
	DaysRemaining        int
}

// CalculateExpiry computes the guarantee expiry for an installation.
//
// A guarantee valid "for N days" covers days 0..N-1 after installation;
// ExpiresAt is one full day past the last covered day so it can be used
// as an exclusive upper bound. All arithmetic is whole-day on UTC
// midnights; leap years fall out of day arithmetic, no calendar-month
// math is involved.
//
// A zero-day window is expired immediately. A future installation date
// yields DaysRemaining greater than guaranteeDays and IsExpired false:
// the guarantee has not started, so it cannot have lapsed.
func CalculateExpiry(installationDate time.Time, guaranteeDays int, now time.Time) ExpiryResult {
	install := midnightUTC(installationDate)
	expiresAt := install.Add(time.Duration(guaranteeDays+1) * day)

	daysRemaining := guaranteeDays - DaysElapsed(installationDate, now)

	result := ExpiryResult{
		ExpiresAt:            expiresAt,
		DaysFromInstallation: guaranteeDays,
		IsExpired:            daysRemaining <= 0,
		DaysRemaining:        daysRemaining,
	}
	if result.DaysRemaining < 0 {
		result.DaysRemaining = 0
	}
	return result
}

// DaysElapsed returns the rounded whole-day difference between the
// evaluation time and the installation date, both normalized to UTC
// midnight. Negative when the installation date is in the future.
func DaysElapsed(installationDate, now time.Time) int {
	install := midnightUTC(installationDate)
	today := midnightUTC(now)
	diff := today.Sub(install)
	if diff >= 0 {
		return int((diff + day/2) / day)
	}
	return -int((-diff + day/2) / day)
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
