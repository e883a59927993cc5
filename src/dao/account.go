package dao

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/ProjectsTask/LandSwapCore/errcode"
	"github.com/ProjectsTask/LandSwapCore/src/common/utils"
	"github.com/ProjectsTask/LandSwapCore/src/common/validate"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb/landmodel"
)

// GetAccount 读取资金账户
func (d *Dao) GetAccount(ctx context.Context, address string) (*landmodel.Account, error) {
	var account landmodel.Account
	if err := d.DB.WithContext(ctx).
		Where("address = ?", validate.NormalizeAddress(address)).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed on get account")
	}
	return &account, nil
}

// Deposit 为账户充值 (不存在则创建)
// 资金入口属于外部执行环境, 这里仅提供充值原语供部署初始化与测试使用
func (d *Dao) Deposit(tx *gorm.DB, address string, amount uint64) error {
	addr := validate.NormalizeAddress(address)

	account, err := getAccountForUpdate(tx, addr)
	if err != nil {
		if !errors.Is(err, errcode.ErrAccountNotFound) {
			return err
		}
		account = &landmodel.Account{Address: addr}
		if err := tx.Create(account).Error; err != nil {
			return errors.Wrap(err, "failed on create account")
		}
	}

	balance, ok := utils.SafeAdd(account.Balance, amount)
	if !ok {
		return errcode.ErrMathOverflow
	}
	account.Balance = balance
	if err := tx.Save(account).Error; err != nil {
		return errors.Wrap(err, "failed on save account")
	}
	return nil
}

// Transfer 在事务内完成一笔余额划转
// 锁定顺序按地址字典序固定, 避免并发结算互相死锁;
// 付款方账户必须存在, 收款方账户不存在则即席创建;
// 余额不足/溢出直接返回业务错误, 由调用方回滚整个操作
func (d *Dao) Transfer(tx *gorm.DB, from, to string, amount uint64) error {
	if amount == 0 {
		return nil
	}

	fromAddr := validate.NormalizeAddress(from)
	toAddr := validate.NormalizeAddress(to)

	// 固定加锁顺序
	first, second := fromAddr, toAddr
	if second < first {
		first, second = second, first
	}

	locked := make(map[string]*landmodel.Account, 2)
	for _, addr := range []string{first, second} {
		account, err := getAccountForUpdate(tx, addr)
		if err != nil {
			if addr == fromAddr || !errors.Is(err, errcode.ErrAccountNotFound) {
				return err
			}
			account = &landmodel.Account{Address: addr}
			if err := tx.Create(account).Error; err != nil {
				return errors.Wrap(err, "failed on create account")
			}
		}
		locked[addr] = account
	}

	fromAccount, toAccount := locked[fromAddr], locked[toAddr]

	balance, ok := utils.SafeSub(fromAccount.Balance, amount)
	if !ok {
		return errcode.ErrInsufficientBalance
	}
	fromAccount.Balance = balance

	balance, ok = utils.SafeAdd(toAccount.Balance, amount)
	if !ok {
		return errcode.ErrMathOverflow
	}
	toAccount.Balance = balance

	if err := tx.Save(fromAccount).Error; err != nil {
		return errors.Wrap(err, "failed on save from account")
	}
	if err := tx.Save(toAccount).Error; err != nil {
		return errors.Wrap(err, "failed on save to account")
	}
	return nil
}

func getAccountForUpdate(tx *gorm.DB, address string) (*landmodel.Account, error) {
	var account landmodel.Account
	if err := forUpdate(tx).
		Where("address = ?", address).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrAccountNotFound
		}
		return nil, errors.Wrap(err, "failed on get account for update")
	}
	return &account, nil
}
