package model

type LogConfig struct {
	File       string `json:"file,omitempty" yaml:"file,omitempty"` // empty means stderr
	MaxSizeMB  int    `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" yaml:"max_backups"`
}

type Config struct {
	Session       string             `json:"session" yaml:"session"`
	HTTPAddr      string             `json:"http_addr" yaml:"http_addr"`
	QueueCapacity int                `json:"queue_capacity" yaml:"queue_capacity"`
	JournalPath   string             `json:"journal_path" yaml:"journal_path"`
	ScenarioPath  string             `json:"scenario_path,omitempty" yaml:"scenario_path,omitempty"`
	Log           LogConfig          `json:"log" yaml:"log"`
	Devices       []*BluetoothDevice `json:"devices" yaml:"devices"` // Initial device cache
}
