package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fizanhabeeb/gracepos/internal/backup"
	"github.com/fizanhabeeb/gracepos/internal/domain"
)

const backupFilesToKeep = 7

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedAutoBackupTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.gormDB.
			Where("opt_time < ?", time.Now().
				Add(-time.Hour*24*365)).Delete(domain.PosAuditLog{})
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedAutoBackupTask writes the daily safety backup into the workdir and
// prunes older files. The share/pick flow on the screens is untouched by
// this; it exists so a dead device still has yesterday's data on disk.
func (a *Application) SchedAutoBackupTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	dir := a.appConfig.GetBackupDir()
	path, err := a.engine.WriteFile(dir)
	if err != nil {
		zap.S().Errorf("auto backup failed: %s", err.Error())
		return
	}
	a.engine.UpdateLastBackupTimestamp()
	if err := backup.Prune(dir, backupFilesToKeep); err != nil {
		zap.S().Warnf("backup prune failed: %s", err.Error())
	}
	zap.S().Infof("auto backup written: %s", path)
}
