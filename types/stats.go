package types

// StatsHub allows types to register to receive stats and to also send stats to fanout to receivers.
type StatsHub interface {
	SendFillStats(FillStats)

	RegisterFill(func(FillStats)) NotificationRelease
}

type NotificationRelease func()

// FillStats describes a single fill pass over a source.
type FillStats struct {
	// Pulled is the number of items consumed from the source.
	Pulled int
	// Released is the number of items released because the batch was abandoned.
	Released int
	// Completed is true when a full batch was handed to the caller.
	Completed bool
	// Exhausted is true when the source ran out before the batch filled.
	Exhausted bool
}
