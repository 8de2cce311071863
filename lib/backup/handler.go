package backup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"office-tools-backend/config"
	"office-tools-backend/lib/rbac"
	"office-tools-backend/models"
	s3client "office-tools-backend/s3"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrForbidden = errors.New("Forbidden")

type Provider interface {
	Run(ctx context.Context, actor models.Actor) (fileName string, dump []byte, err error)
	List(ctx context.Context, actor models.Actor) ([]s3client.ObjectInfo, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// Run produces a pg_dump of the main database. The dump goes back to the
// caller, a copy lands in S3 when a client is configured.
func (i impl) Run(ctx context.Context, actor models.Actor) (string, []byte, error) {
	if !rbac.Can(actor, rbac.ActionBackupRun, rbac.Resource{}) {
		return "", nil, ErrForbidden
	}
	dbConf := config.Conf.Database
	cmd := exec.CommandContext(ctx, config.Conf.Backup.PgDumpPath,
		"-h", dbConf.Host,
		"-p", dbConf.Port,
		"-U", dbConf.User,
		"-d", dbConf.Name,
		"--format=plain",
		"--no-owner",
	)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+dbConf.Password)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.WithError(err).WithField("stderr", stderr.String()).Error("pg_dump failed")
		return "", nil, errors.Wrap(err, "pg_dump failed")
	}

	fileName := fmt.Sprintf("backup_%s_%s.sql", dbConf.Name, time.Now().Format("20060102_150405"))
	if s3client.Instance != nil {
		err := s3client.Instance.Upload(ctx, fileName, bytes.NewReader(out.Bytes()), int64(out.Len()), "application/sql")
		if err != nil {
			log.WithError(err).WithField("object", fileName).Warn("backup upload to s3 failed")
		}
	}
	return fileName, out.Bytes(), nil
}

func (i impl) List(ctx context.Context, actor models.Actor) ([]s3client.ObjectInfo, error) {
	if !rbac.Can(actor, rbac.ActionBackupRun, rbac.Resource{}) {
		return nil, ErrForbidden
	}
	if s3client.Instance == nil {
		return []s3client.ObjectInfo{}, nil
	}
	return s3client.Instance.List(ctx)
}
