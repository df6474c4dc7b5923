package config

type StorageConfig struct {
	Provider  string `yaml:"provider"` // local or s3
	LocalPath string `yaml:"local_path"`
	S3Region  string `yaml:"s3_region"`
	S3Bucket  string `yaml:"s3_bucket"`
	CDNDomain string `yaml:"cdn_domain"`
}

func loadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalPath: getEnv("STORAGE_LOCAL_PATH", "./uploads"),
		S3Region:  getEnv("AWS_S3_REGION", "eu-west-2"),
		S3Bucket:  getEnv("AWS_S3_BUCKET", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
	}
}
