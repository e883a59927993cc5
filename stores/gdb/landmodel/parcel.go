package landmodel

// 地块字段约束
const (
	// MinCoordinate / MaxCoordinate 坐标分量取值范围
	MinCoordinate = -10000
	MaxCoordinate = 10000
	// MaxNameLen 地块名称最大长度
	MaxNameLen = 32
	// MaxMetadataURILen 元数据链接最大长度
	MaxMetadataURILen = 200
)

// ParcelSize 地块尺寸 (封闭枚举)
type ParcelSize uint8

const (
	SizeSmall ParcelSize = iota
	SizeMedium
	SizeLarge
	SizeXLarge
)

// Valid 尺寸取值是否合法
func (s ParcelSize) Valid() bool {
	return s <= SizeXLarge
}

func (s ParcelSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeXLarge:
		return "xlarge"
	default:
		return "unknown"
	}
}

// Rarity 地块稀有度 (封闭枚举)
type Rarity uint8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// Valid 稀有度取值是否合法
func (r Rarity) Valid() bool {
	return r <= RarityLegendary
}

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// LandParcel 土地地块记录, 每个铸造单位一行, 以 mint 唯一标识
// 不变量: 任意时刻最多只有一个引用该地块的 Active 挂单, is_listed 与之同步
type LandParcel struct {
	ID           int64      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Mint         string     `json:"mint" gorm:"column:mint;type:varchar(64);not null;uniqueIndex"` // 唯一铸造标识
	Owner        string     `json:"owner" gorm:"column:owner;type:varchar(42);not null;index"`     // 当前持有人
	CoordinateX  int32      `json:"coordinate_x" gorm:"column:coordinate_x;not null"`
	CoordinateY  int32      `json:"coordinate_y" gorm:"column:coordinate_y;not null"`
	Size         ParcelSize `json:"size" gorm:"column:size;not null"`
	Rarity       Rarity     `json:"rarity" gorm:"column:rarity;not null"`
	Name         string     `json:"name" gorm:"column:name;type:varchar(32);not null"`
	MetadataURI  string     `json:"metadata_uri" gorm:"column:metadata_uri;type:varchar(200);not null"`
	IsListed     bool       `json:"is_listed" gorm:"column:is_listed;not null;default:false"`
	TotalTrades  uint64     `json:"total_trades" gorm:"column:total_trades;not null;default:0"` // 完成的成交次数
	LastSalePrice uint64    `json:"last_sale_price" gorm:"column:last_sale_price;not null;default:0"`
	CreateTime   int64      `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime   int64      `json:"update_time" gorm:"column:update_time;autoUpdateTime"`
}

func (LandParcel) TableName() string {
	return LandParcelTableName()
}

func LandParcelTableName() string {
	return "lm_land_parcel"
}
