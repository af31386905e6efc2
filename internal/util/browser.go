package util

import (
	"os/exec"
	"runtime"
)

// browserCommands 按平台列出打开 URL 的候选命令，依次尝试
func browserCommands(url string) [][]string {
	switch runtime.GOOS {
	case "windows":
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		return [][]string{
			{"xdg-open", url},
			{"sensible-browser", url},
			{"firefox", url},
			{"google-chrome", url},
		}
	}
}

// OpenBrowser 用系统默认浏览器打开页面，失败时尝试备选命令
func OpenBrowser(url string) error {
	var firstErr error
	for _, args := range browserCommands(url) {
		err := exec.Command(args[0], args[1:]...).Start()
		if err == nil {
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
