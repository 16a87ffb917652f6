package config

type InternalConfig struct {
	App     App
	API     API
	Session Session
	Sync    Sync
}

type App struct {
	Env      string
	Version  string
	Timezone string
}

type API struct {
	BaseURL                 string
	RequestTimeoutInSeconds int
}

type Session struct {
	StorageDriver string
	FilePath      string
	TTLInDays     int
}

type Sync struct {
	PollIntervalInSeconds      int
	ManualRefreshesPerMinute   int
	ManualRefreshBurst         int
	InitialFetchTimeoutSeconds int
}
