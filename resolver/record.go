package resolver

import (
	"fmt"
	"strconv"
	"strings"
)

// recordFieldCount 成功结果的固定字段数.
const recordFieldCount = 8

// Record 一次成功解析得到的语言记录.
//
// 除 CLID 外的字段均来自原生结果文本，按固定顺序以制表符分隔；
// CLID 由 CLIDHex 按十六进制解析得到. 任何字段都可能为空串，
// 但不可能缺失. 每次调用产生全新的记录，调用方独占所有权.
type Record struct {
	// Name 语言的显示名称，可能包含空格.
	Name string `json:"name"`

	// Location 关联的国家或地区.
	Location string `json:"location"`

	// CLIDHex Microsoft LCID 的十六进制文本，原生侧以 0x%04X 格式输出.
	CLIDHex string `json:"clidHex"`

	// CLID 由 CLIDHex 解析出的数值形式.
	CLID uint32 `json:"clid"`

	// BCP47 规范化的 BCP-47 标签，如 en-US.
	BCP47 string `json:"bcp47"`

	// WinID Windows 三字母语言 ID，如 CHS，可能是占位值.
	WinID string `json:"winid"`

	// ISO639Set1 ISO 639-1 两字母代码，未定义时原生侧回退为 Set2.
	ISO639Set1 string `json:"iso639_1"`

	// ISO639Set2 ISO 639-2 三字母代码.
	ISO639Set2 string `json:"iso639_2"`

	// ISO639Set3 ISO 639-3 三字母代码，宏语言成员会与 Set2 不同.
	ISO639Set3 string `json:"iso639_3"`
}

// IsValidWinID 检查 WinID 是否为有效的 Windows 语言 ID.
//
// 有效值为恰好 3 个 ASCII 字母且不是占位值 ZZZ（不区分大小写）.
func (r *Record) IsValidWinID() bool {
	if len(r.WinID) != 3 {
		return false
	}
	for i := 0; i < len(r.WinID); i++ {
		c := r.WinID[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return !strings.EqualFold(r.WinID, "ZZZ")
}

// Clone 返回记录的独立副本.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}

// decodeRecord 解码制表符分隔的结果文本.
//
// 结果是一个微型线格式：恰好 8 个字段、固定顺序、字段内不含
// 制表符. 字段数不符或 clidHex 无法解析都是约定失配.
func decodeRecord(payload string) (*Record, error) {
	fields := strings.Split(payload, "\t")
	if len(fields) != recordFieldCount {
		return nil, &DecodeError{
			Reason:  fmt.Sprintf("expected %d fields, got %d", recordFieldCount, len(fields)),
			Payload: payload,
		}
	}

	clidHex := fields[2]
	hex := clidHex
	if len(hex) >= 2 && (hex[:2] == "0x" || hex[:2] == "0X") {
		hex = hex[2:]
	}
	clid, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, &DecodeError{
			Reason:  fmt.Sprintf("invalid clidHex %q", clidHex),
			Payload: payload,
		}
	}

	return &Record{
		Name:       fields[0],
		Location:   fields[1],
		CLIDHex:    clidHex,
		CLID:       uint32(clid),
		BCP47:      fields[3],
		WinID:      fields[4],
		ISO639Set1: fields[5],
		ISO639Set2: fields[6],
		ISO639Set3: fields[7],
	}, nil
}
