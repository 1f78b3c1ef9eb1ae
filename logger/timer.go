package logger

import "time"

type Timer struct {
	StartTime time.Time
	Name      string
	Console   *Console
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.StartTime)
}

// End reports the elapsed time through the console and returns it.
func (t *Timer) End() time.Duration {
	duration := t.Elapsed()
	t.Console.Info("%s completed in %v", t.Name, duration.Round(time.Millisecond))
	return duration
}
