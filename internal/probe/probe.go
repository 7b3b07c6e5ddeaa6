// Package probe는 외부 셸을 실행해 실제 상속된 PATH를 읽어온다.
// GUI에서 실행된 프로세스는 셸 시작 파일을 거치지 않으므로 로그인 셸로 다시 조회한다.
package probe

import (
	"context"
	"strings"
	"time"

	"github.com/hbjs97/envpath/internal/cmdexec"
	"github.com/hbjs97/envpath/internal/logger"
	"github.com/hbjs97/envpath/internal/pathlist"
	"github.com/hbjs97/envpath/internal/platform"
	"github.com/hbjs97/envpath/internal/sysenv"
)

// DefaultTimeout은 조회 명령의 기본 제한 시간이다.
const DefaultTimeout = 5 * time.Second

// windowsPlaceholder는 cmd가 PATH를 확장하지 못했을 때 그대로 출력되는 값이다.
const windowsPlaceholder = "%PATH%"

// Probe는 플랫폼별 명령으로 시스템 PATH를 조회한다.
type Probe struct {
	cmd     cmdexec.Commander
	env     sysenv.Env
	host    platform.OS
	timeout time.Duration
	extra   []string
	log     logger.Logger
}

// Options는 Probe 생성 인자다.
type Options struct {
	Commander cmdexec.Commander
	Env       sysenv.Env
	Platform  platform.OS
	Timeout   time.Duration
	// ExtraPaths는 보조 디렉토리 뒤에 추가로 붙는 사용자 지정 디렉토리다.
	ExtraPaths []string
	Logger     logger.Logger
}

// New는 새 Probe를 생성한다. Timeout이 0 이하이면 DefaultTimeout을 쓴다.
func New(opts Options) *Probe {
	p := &Probe{
		cmd:     opts.Commander,
		env:     opts.Env,
		host:    opts.Platform,
		timeout: opts.Timeout,
		extra:   opts.ExtraPaths,
		log:     opts.Logger,
	}
	if p.timeout <= 0 {
		p.timeout = DefaultTimeout
	}
	if p.log == nil {
		p.log = logger.Nop()
	}
	return p
}

// Command는 플랫폼에 맞는 PATH 조회 명령을 반환한다.
func Command(host platform.OS) (string, []string) {
	switch host {
	case platform.Windows:
		return "cmd", []string{"/C", "echo " + windowsPlaceholder}
	case platform.Darwin:
		return "/bin/bash", []string{"-l", "-c", "echo $PATH"}
	default:
		return "/bin/bash", []string{"-c", "echo $PATH"}
	}
}

// SupplementaryDirs는 조회 결과 뒤에 붙이는 잘 알려진 디렉토리 목록이다.
// 존재 여부는 여기서 확인하지 않는다.
func SupplementaryDirs(host platform.OS, home string) []string {
	switch host {
	case platform.Windows:
		return []string{
			host.JoinPath(home, ".pyenv", "pyenv-win", "shims"),
			host.JoinPath(home, ".local", "bin"),
			host.JoinPath(home, "bin"),
			host.JoinPath(home, "scoop", "shims"),
			host.JoinPath(home, "AppData", "Local", "Pub", "Cache", "bin"),
		}
	case platform.Darwin:
		return []string{
			host.JoinPath(home, ".pyenv", "shims"),
			host.JoinPath(home, ".local", "bin"),
			host.JoinPath(home, "bin"),
			host.JoinPath(home, ".pub-cache", "bin"),
			"/opt/homebrew/sbin",
			"/opt/homebrew/bin",
		}
	default:
		return []string{
			host.JoinPath(home, ".pyenv", "shims"),
			host.JoinPath(home, ".local", "bin"),
			host.JoinPath(home, "bin"),
			host.JoinPath(home, ".pub-cache", "bin"),
			"/home/linuxbrew/.linuxbrew/sbin",
			"/home/linuxbrew/.linuxbrew/bin",
		}
	}
}

// SystemPath는 셸을 실행해 PATH를 읽는다. 실패, 시간 초과, 확장되지 않은
// 자리표시자 출력은 모두 결과 없음(false)으로 처리한다.
func (p *Probe) SystemPath(ctx context.Context) (string, bool) {
	// 조회용 셸의 시작 파일에서 다시 실행된 경우 셸을 또 띄우지 않는다.
	if sysenv.Get(p.env, sysenv.ProbeMarker) != "" {
		p.log.Debug("running inside a PATH probe shell, skipping system PATH query")
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	name, args := Command(p.host)
	out, err := p.cmd.OutputWithEnv(ctx, map[string]string{sysenv.ProbeMarker: "1"}, name, args...)
	if err != nil {
		p.log.Debug("failed to get system PATH", "command", name, "error", err)
		return "", false
	}

	systemPath := strings.TrimSpace(string(out))
	if systemPath == "" || systemPath == windowsPlaceholder {
		p.log.Debug("system PATH probe returned no value", "output", systemPath)
		return "", false
	}

	sep := p.host.ListSeparator()
	if home := sysenv.Home(p.env); home != "" {
		extra := append(SupplementaryDirs(p.host, home), p.extra...)
		systemPath = pathlist.Concat(sep, systemPath, pathlist.Join(extra, sep))
	} else if len(p.extra) > 0 {
		systemPath = pathlist.Concat(sep, systemPath, pathlist.Join(p.extra, sep))
	}
	return systemPath, true
}
