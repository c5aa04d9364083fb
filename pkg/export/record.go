package export

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Record 上一次生成的摘要，用于判断精灵表是否发生变化
type Record struct {
	Digest      string    `yaml:"digest"`      // PNG 字节的 SHA-256（十六进制）
	PNGSize     int       `yaml:"pngSize"`     // PNG 字节数
	Base64Len   int       `yaml:"base64Len"`   // base64 字符数
	GeneratedAt time.Time `yaml:"generatedAt"` // 生成时间
}

// Change 与上次生成记录的比较结果
type Change int

const (
	ChangeFirstRun  Change = iota // 没有历史记录
	ChangeUnchanged               // 摘要相同
	ChangeChanged                 // 摘要不同
)

func (c Change) String() string {
	switch c {
	case ChangeUnchanged:
		return "unchanged"
	case ChangeChanged:
		return "changed"
	default:
		return "first run"
	}
}

// 存储路径常量
const (
	recordObject   = "generation"
	recordProperty = "last"
)

// NewRecord 根据输出结果生成记录
func NewRecord(r *Result, now time.Time) Record {
	sum := sha256.Sum256(r.PNGData)
	return Record{
		Digest:      hex.EncodeToString(sum[:]),
		PNGSize:     r.PNGSize,
		Base64Len:   r.Base64Len,
		GeneratedAt: now.UTC(),
	}
}

// RecordStore 生成记录存储
// 基于 gdata 跨平台存储；manager 为 nil 时进入降级模式（不读不写，不报错）
type RecordStore struct {
	manager *gdata.Manager
}

// OpenRecordStore 打开应用 appName 的记录存储
//
// 参数：
//   - appName: gdata 应用名（决定数据目录）
//
// 返回：
//   - *RecordStore: 总是非 nil；打开失败时为降级模式
//   - error: gdata 打开失败的原因（调用方只需记录警告）
func OpenRecordStore(appName string) (*RecordStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &RecordStore{}, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return &RecordStore{manager: manager}, nil
}

// NewRecordStore 使用已有的 gdata Manager 创建记录存储（可为 nil）
func NewRecordStore(manager *gdata.Manager) *RecordStore {
	return &RecordStore{manager: manager}
}

// Load 读取上一次的记录
//
// 返回：
//   - *Record: 没有记录（或降级模式）时为 nil
//   - error: 读取或反序列化失败
func (s *RecordStore) Load() (*Record, error) {
	if s.manager == nil {
		return nil, nil
	}
	if !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil, nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation record: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation record: %w", err)
	}
	return &rec, nil
}

// Save 保存记录，降级模式下直接返回 nil
func (s *RecordStore) Save(rec Record) error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal generation record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("failed to save generation record: %w", err)
	}
	return nil
}

// Compare 将新记录与已保存的记录比较，并保存新记录
//
// 读取失败时按首次运行处理（记录警告），不影响生成结果。
//
// 返回：
//   - Change: 比较结果
//   - *Record: 上一次的记录（首次运行时为 nil）
//   - error: 保存失败
func (s *RecordStore) Compare(rec Record) (Change, *Record, error) {
	prev, err := s.Load()
	if err != nil {
		log.Printf("[Record] Warning: %v (treating as first run)", err)
		prev = nil
	}

	change := ChangeFirstRun
	if prev != nil {
		if prev.Digest == rec.Digest {
			change = ChangeUnchanged
		} else {
			change = ChangeChanged
		}
	}

	if err := s.Save(rec); err != nil {
		return change, prev, err
	}
	return change, prev, nil
}
