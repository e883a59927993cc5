package landmodel

// Account 资金账户, 以地址为唯一键
// 结算协议通过它完成买家 -> 卖家 / 金库的转账, 余额永不为负
type Account struct {
	ID         int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Address    string `json:"address" gorm:"column:address;type:varchar(42);not null;uniqueIndex"`
	Balance    uint64 `json:"balance" gorm:"column:balance;not null;default:0"`
	CreateTime int64  `json:"create_time" gorm:"column:create_time;autoCreateTime"`
	UpdateTime int64  `json:"update_time" gorm:"column:update_time;autoUpdateTime"`
}

func (Account) TableName() string {
	return AccountTableName()
}

func AccountTableName() string {
	return "lm_account"
}
