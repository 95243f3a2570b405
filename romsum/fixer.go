package romsum

import "fmt"

type LogFunc func(level int, format string, param ...interface{})

var DefaultStartOffsets = []int{0, 0x4000, 0x8000, 0x10000, 0x20000}

/* Number of bytes before the end of a region in which the checksum cell is searched */
const DefaultScanWindow = 64

type Config struct {
	StartOffsets []int
	ScanWindow   int

	LogFunc LogFunc
}

type Fixer struct {
	config Config
}

func New(config Config) (*Fixer, error) {
	if config.StartOffsets == nil {
		config.StartOffsets = DefaultStartOffsets
	}
	if config.ScanWindow == 0 {
		config.ScanWindow = DefaultScanWindow
	}

	for _, m := range config.StartOffsets {
		if m < 0 || m&3 != 0 {
			return nil, fmt.Errorf("%w: start offset 0x%X", ErrorUnaligned, m)
		}
	}
	if config.ScanWindow < 4 || config.ScanWindow&3 != 0 {
		return nil, fmt.Errorf("%w: scan window %d", ErrorUnaligned, config.ScanWindow)
	}

	return &Fixer{
		config: config,
	}, nil
}

func (f *Fixer) log(level int, format string, param ...interface{}) {
	if f.config.LogFunc != nil {
		f.config.LogFunc(level, format, param...)
	}
}
