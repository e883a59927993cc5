package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd 根命令, 本身不做任何事, 只负责挂载子命令
var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "land swap listing sweeper.",
	Long:  "land swap listing sweeper.",
}

// Execute 解析命令行参数并执行相应的命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "conf", "./config/config.toml", "conf file path")
}

// initConfig 在命令执行前加载配置文件到 viper
func initConfig() {
	viper.SetConfigFile(cfgFile)
	viper.SetConfigType("toml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LSWAP")
}
