package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// DemoSliderWatcher 监视磁盘上的演示滑条文件，文件变化后重新加载
//
// 监视的是文件所在目录，以便兼容编辑器“写临时文件再改名”的保存方式。
// 重新加载在后台 goroutine 中进行，结果通过 Poll 在渲染线程中取出。
type DemoSliderWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *DemoSliderConfig
	done    chan struct{}
}

// NewDemoSliderWatcher 开始监视 path
//
// 参数：
//   - path: 磁盘上的 YAML 文件路径（不支持嵌入资源）
//
// 返回：
//   - *DemoSliderWatcher: 监视器，使用完毕需调用 Close
//   - error: 无法创建监视器或无法监视所在目录
func NewDemoSliderWatcher(path string) (*DemoSliderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", path, err)
	}

	w := &DemoSliderWatcher{
		path:    filepath.Clean(path),
		watcher: watcher,
		updates: make(chan *DemoSliderConfig, 1),
		done:    make(chan struct{}),
	}
	go w.run()

	log.Printf("[DemoSliderWatcher] Watching %s", w.path)
	return w, nil
}

func (w *DemoSliderWatcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[DemoSliderWatcher] Watcher error: %v", err)
		}
	}
}

// reload 读取文件并投递结果，未取走的旧结果被替换
func (w *DemoSliderWatcher) reload() {
	// 始终读取磁盘，嵌入资源不会变化
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Printf("[DemoSliderWatcher] Failed to read %s: %v", w.path, err)
		return
	}
	cfg, err := ParseDemoSliders(data, w.path)
	if err != nil {
		// 保存到一半的文件很常见，等待下一次事件
		log.Printf("[DemoSliderWatcher] Ignoring invalid %s: %v", w.path, err)
		return
	}

	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	log.Printf("[DemoSliderWatcher] Reloaded %d sliders from %s", len(cfg.Sliders), w.path)
}

// Poll 非阻塞地取出最近一次重新加载的配置
func (w *DemoSliderWatcher) Poll() (*DemoSliderConfig, bool) {
	select {
	case cfg := <-w.updates:
		return cfg, true
	default:
		return nil, false
	}
}

// Close 停止监视
func (w *DemoSliderWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
