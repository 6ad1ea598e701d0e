package report

import "time"

func (l *Logger) SetClock(now func() time.Time) { l.now = now }
