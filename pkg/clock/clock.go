package clock

import (
	"fmt"
	"time"
)

// Clock 为考勤引擎提供当前时间。引擎里所有“现在”和“今天”
// 都必须经过它，禁止直接调用 time.Now，便于测试时固定时间。
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type zoneClock struct {
	loc *time.Location
}

// New 返回指定时区的时钟。
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", timezone, err)
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}

// Fixed 返回始终报告 t 的时钟，测试用。
func Fixed(t time.Time) Clock {
	return fixedClock{t: t}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

func (c fixedClock) Location() *time.Location {
	return c.t.Location()
}

// DateOf 返回 t 在其所在时区的日历日（零点）。
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateString 返回 t 的日历日字符串（YYYY-MM-DD）。
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}
