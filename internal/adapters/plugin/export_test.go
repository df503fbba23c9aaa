package plugin

import "time"

// SetClock replaces the clock used for CreatedTime.
func (c *Cache) SetClock(now func() time.Time) {
	c.now = now
}
