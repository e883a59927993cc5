package config

import (
	"strings"

	"github.com/spf13/viper"

	logging "github.com/ProjectsTask/LandSwapCore/logger"
	"github.com/ProjectsTask/LandSwapCore/stores/gdb"
)

// Config 定义了应用程序的全局配置结构
type Config struct {
	Api        Api              `toml:"api" mapstructure:"api" json:"api"`                         // HTTP 服务配置
	Monitor    *Monitor         `toml:"monitor" mapstructure:"monitor" json:"monitor"`             // 监控相关配置
	Log        logging.LogConf  `toml:"log" mapstructure:"log" json:"log"`                         // 日志配置
	Kv         *KvConf          `toml:"kv" mapstructure:"kv" json:"kv"`                            // KV存储配置 (Redis)
	DB         gdb.Config       `toml:"db" mapstructure:"db" json:"db"`                            // 数据库配置 (MySQL)
	Metadata   MetadataCfg      `toml:"metadata" mapstructure:"metadata" json:"metadata"`          // 元数据服务配置
	Sweeper    SweeperCfg       `toml:"sweeper" mapstructure:"sweeper" json:"sweeper"`             // 过期清理配置
	ProjectCfg ProjectCfg       `toml:"project_cfg" mapstructure:"project_cfg" json:"project_cfg"` // 项目名称配置
}

// Api HTTP 服务配置
type Api struct {
	Port string `toml:"port" mapstructure:"port" json:"port"` // 监听端口, 如 ":9000"
}

// Monitor 定义监控配置
type Monitor struct {
	PprofEnable bool  `toml:"pprof_enable" mapstructure:"pprof_enable" json:"pprof_enable"` // 是否开启 Pprof
	PprofPort   int64 `toml:"pprof_port" mapstructure:"pprof_port" json:"pprof_port"`       // Pprof 监听端口
}

// MetadataCfg 描述性元数据服务 (外部协作方) 配置
type MetadataCfg struct {
	Endpoint string `toml:"endpoint" mapstructure:"endpoint" json:"endpoint"` // 服务地址
	Timeout  int64  `toml:"timeout" mapstructure:"timeout" json:"timeout"`    // 单次请求超时 (秒)
	Retries  int    `toml:"retries" mapstructure:"retries" json:"retries"`    // 最大重试次数
}

// SweeperCfg 过期挂单清理配置
type SweeperCfg struct {
	Interval  int64 `toml:"interval" mapstructure:"interval" json:"interval"`    // 扫描间隔 (秒)
	BatchSize int   `toml:"batch_size" mapstructure:"batch_size" json:"batch_size"` // 单批处理的挂单数
}

// ProjectCfg 定义项目配置
type ProjectCfg struct {
	Name string `toml:"name" mapstructure:"name" json:"name"` // 项目名称
}

// KvConf 定义 Key-Value 存储配置
type KvConf struct {
	Redis []*Redis `toml:"redis" json:"redis"` // Redis 列表（可能支持多实例）
}

// Redis 定义 Redis 连接配置
type Redis struct {
	Host string `toml:"host" json:"host"` // Redis 主机地址
	Type string `toml:"type" json:"type"` // Redis 类型 (node, cluster)
	Pass string `toml:"pass" json:"pass"` // Redis 密码
}

// UnmarshalConfig 加载并解析指定路径的配置文件
// @params configFilePath: 配置文件路径
func UnmarshalConfig(configFilePath string) (*Config, error) {
	viper.SetConfigFile(configFilePath) // 设置配置文件路径
	viper.SetConfigType("toml")         // 设置配置文件类型为 TOML
	viper.AutomaticEnv()                // 自动读取环境变量
	viper.SetEnvPrefix("LSWAP")         // 设置环境变量前缀, 如 LSWAP_DB_HOST
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer) // 替换 key 中的 . 为 _

	if err := viper.ReadInConfig(); err != nil { // 读取配置
		return nil, err
	}

	var c Config
	if err := viper.Unmarshal(&c); err != nil { // 解析到结构体
		return nil, err
	}

	return &c, nil
}

// UnmarshalCmdConfig 加载并解析默认配置文件 (cobra 命令场景下使用)
func UnmarshalCmdConfig() (*Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		return nil, err
	}

	return &c, nil
}
