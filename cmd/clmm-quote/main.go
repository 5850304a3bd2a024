package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	clmmgo "github.com/krazyTry/clmm-go"
	"github.com/krazyTry/clmm-go/clmm"
	"github.com/krazyTry/clmm-go/clmm/math"
)

func main() {
	root := &cobra.Command{
		Use:          "clmm-quote",
		Short:        "Concentrated-liquidity pool quoting",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	amountsCmd := &cobra.Command{
		Use:   "amounts",
		Short: "Token amounts required to back a liquidity position",
		RunE:  runAmounts,
	}
	amountsCmd.Flags().Int32("current-tick", 0, "pool's current tick")
	amountsCmd.Flags().Int32("tick-lower", 0, "position lower tick")
	amountsCmd.Flags().Int32("tick-upper", 0, "position upper tick")
	amountsCmd.Flags().String("liquidity", "", "liquidity to provision (u128)")
	root.AddCommand(amountsCmd)

	priceCmd := &cobra.Command{
		Use:   "price",
		Short: "Convert between a tick and a price, adjusted for mint decimals",
		RunE:  runPrice,
	}
	priceCmd.Flags().Int32("tick", 0, "tick index")
	priceCmd.Flags().String("price", "", "price of token A in token B; prints the tick at or below it")
	priceCmd.Flags().Uint8("decimals-a", 9, "token A decimals")
	priceCmd.Flags().Uint8("decimals-b", 9, "token B decimals")
	root.AddCommand(priceCmd)

	sharesCmd := &cobra.Command{
		Use:   "shares",
		Short: "LP tokens a deposit would mint",
		RunE:  runShares,
	}
	sharesCmd.Flags().Uint64("supply", 0, "outstanding LP supply")
	sharesCmd.Flags().Uint64("balance-a", 0, "vault A balance")
	sharesCmd.Flags().Uint64("balance-b", 0, "vault B balance")
	sharesCmd.Flags().Uint64("amount-a", 0, "token A deposit")
	sharesCmd.Flags().Uint64("amount-b", 0, "token B deposit")
	root.AddCommand(sharesCmd)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote an add-liquidity call against a live pool",
		RunE:  runQuote,
	}
	quoteCmd.Flags().String("rpc", "", "Solana RPC URL")
	quoteCmd.Flags().String("mint-a", "", "token A mint")
	quoteCmd.Flags().String("mint-b", "", "token B mint")
	quoteCmd.Flags().String("depositor", "", "depositor wallet address")
	quoteCmd.Flags().Int32("tick-lower", 0, "position lower tick")
	quoteCmd.Flags().Int32("tick-upper", 0, "position upper tick")
	quoteCmd.Flags().String("liquidity", "", "liquidity to provision (u128)")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(quoteCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseLiquidity(s string) (*big.Int, error) {
	if s == "" {
		return nil, fmt.Errorf("liquidity is required")
	}
	liquidity, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid liquidity: %s", s)
	}
	return liquidity, nil
}

func runAmounts(cmd *cobra.Command, _ []string) error {
	currentTick, _ := cmd.Flags().GetInt32("current-tick")
	tickLower, _ := cmd.Flags().GetInt32("tick-lower")
	tickUpper, _ := cmd.Flags().GetInt32("tick-upper")
	liquidityStr, _ := cmd.Flags().GetString("liquidity")

	liquidity, err := parseLiquidity(liquidityStr)
	if err != nil {
		return err
	}

	currentSqrtPrice, err := math.TickToSqrtPriceX64(currentTick)
	if err != nil {
		return err
	}
	lowerSqrtPrice, err := math.TickToSqrtPriceX64(tickLower)
	if err != nil {
		return err
	}
	upperSqrtPrice, err := math.TickToSqrtPriceX64(tickUpper)
	if err != nil {
		return err
	}

	amountA, amountB, err := math.GetLiquidityAmounts(currentSqrtPrice, lowerSqrtPrice, upperSqrtPrice, liquidity)
	if err != nil {
		return err
	}

	fmt.Printf("amountA:%v \t amountB:%v \n", amountA, amountB)
	return nil
}

func runPrice(cmd *cobra.Command, _ []string) error {
	tick, _ := cmd.Flags().GetInt32("tick")
	priceStr, _ := cmd.Flags().GetString("price")
	decimalsA, _ := cmd.Flags().GetUint8("decimals-a")
	decimalsB, _ := cmd.Flags().GetUint8("decimals-b")

	if priceStr != "" {
		sqrtPrice, err := math.SqrtPriceX64FromPrice(priceStr, decimalsA, decimalsB)
		if err != nil {
			return err
		}
		tick, err = math.TickFromSqrtPriceX64(sqrtPrice)
		if err != nil {
			return err
		}
		fmt.Printf("price:%v \t sqrtPriceX64:%v \t tick:%v \n", priceStr, sqrtPrice, tick)
		return nil
	}

	sqrtPrice, err := math.TickToSqrtPriceX64(tick)
	if err != nil {
		return err
	}

	price := math.PriceFromSqrtPriceX64(sqrtPrice, decimalsA, decimalsB)
	fmt.Printf("tick:%v \t sqrtPriceX64:%v \t price:%v \n", tick, sqrtPrice, price)
	return nil
}

func runShares(cmd *cobra.Command, _ []string) error {
	supply, _ := cmd.Flags().GetUint64("supply")
	balanceA, _ := cmd.Flags().GetUint64("balance-a")
	balanceB, _ := cmd.Flags().GetUint64("balance-b")
	amountA, _ := cmd.Flags().GetUint64("amount-a")
	amountB, _ := cmd.Flags().GetUint64("amount-b")

	minted, err := clmm.LpMintPreview(supply, balanceA, balanceB, amountA, amountB)
	if err != nil {
		return err
	}

	fmt.Printf("lpMinted:%v \n", minted)
	return nil
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	mintAStr, _ := cmd.Flags().GetString("mint-a")
	mintBStr, _ := cmd.Flags().GetString("mint-b")
	depositorStr, _ := cmd.Flags().GetString("depositor")
	tickLower, _ := cmd.Flags().GetInt32("tick-lower")
	tickUpper, _ := cmd.Flags().GetInt32("tick-upper")
	liquidityStr, _ := cmd.Flags().GetString("liquidity")

	mintA, err := solana.PublicKeyFromBase58(mintAStr)
	if err != nil {
		return fmt.Errorf("invalid mint-a: %w", err)
	}
	mintB, err := solana.PublicKeyFromBase58(mintBStr)
	if err != nil {
		return fmt.Errorf("invalid mint-b: %w", err)
	}
	depositor, err := solana.PublicKeyFromBase58(depositorStr)
	if err != nil {
		return fmt.Errorf("invalid depositor: %w", err)
	}
	liquidity, err := parseLiquidity(liquidityStr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := clmmgo.NewCLMM(rpc.New(cfg.RPCURL), clmmgo.WithLogger(logger))

	quote, err := client.QuoteAddLiquidity(ctx, depositor, mintA, mintB, tickLower, tickUpper, liquidity)
	if err != nil {
		return err
	}

	logger.Info("quote",
		zap.Uint64("amountA", quote.AmountA),
		zap.Uint64("amountB", quote.AmountB),
		zap.Uint64("lpMinted", quote.LpMinted),
	)
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
