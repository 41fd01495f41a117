package handlefile

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// 우선순위: .env.local > .env > .env.example
var envFiles = []string{".env.local", ".env", ".env.example"}

// GetProjectRoot: Git 루트 디렉토리 찾기. 실패하면 현재 작업 디렉토리
func GetProjectRoot() string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		currentDir, err := os.Getwd()
		if err != nil {
			return "."
		}
		log.Debug().Str("dir", currentDir).Msg("Git 루트를 찾을 수 없어 현재 디렉토리를 사용합니다")
		return currentDir
	}
	return strings.TrimSpace(string(output))
}

// LoadEnv: dir에서 환경변수 파일 하나를 우선순위대로 찾아 로드
// 이미 설정된 환경변수는 덮어쓰지 않는다. 로드한 파일 경로를 반환 (없으면 "")
func LoadEnv(dir string) (string, error) {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", err
		}
		log.Debug().Str("path", path).Msg("✅ 환경변수 파일 로드 완료")
		return path, nil
	}

	log.Debug().Str("dir", dir).Msg("⚠️ 환경변수 파일이 없습니다. 기본값을 사용합니다")
	return "", nil
}
