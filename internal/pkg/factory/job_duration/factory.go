package job_duration

const (
	baseHandlingMinutes      = 30.0
	perVolumeHandlingMinutes = 15.0
)

type JobTimeFactory struct{}

func New() *JobTimeFactory {
	return &JobTimeFactory{}
}

// HandlingDuration оценка времени погрузки/разгрузки в минутах,
// растет линейно от объема груза.
func (f *JobTimeFactory) HandlingDuration(volume float64) float64 {
	if volume < 0 {
		volume = 0
	}
	return baseHandlingMinutes + perVolumeHandlingMinutes*volume
}
