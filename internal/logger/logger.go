package logger

import "go.uber.org/zap"

var log *zap.Logger = zap.NewNop()

// Init はグローバルロガーを初期化する
func Init(isDev bool) error {
	var (
		l   *zap.Logger
		err error
	)

	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	log = l
	return nil
}

func L() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
