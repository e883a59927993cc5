package utils

import (
	"fmt"
	"time"
)

// Retry 通用重试函数
// @param name: 操作名称(用于日志或错误提示)
// @param attempts: 最大重试次数
// @param sleep: 每次重试间隔时间
// @param fn: 需要执行的函数,返回 error 表示失败需要重试
// @return error: 如果所有尝试都失败,返回"retry time over"错误
func Retry(name string, attempts int, sleep time.Duration, fn func() error) error {
	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		}
		time.Sleep(sleep)
		continue
	}
	return fmt.Errorf("retry %s time over", name)
}
