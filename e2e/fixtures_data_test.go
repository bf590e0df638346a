//go:build e2e && unix

package main

import "testing"

const foodCSV = `id,meal,food,calories,protein_g,carbs_g,fat_g,logged_at
f1,breakfast,Porridge,300,10,50,6,2024-03-01 08:00
f2,lunch,Lentil soup,420,22,55,9,2024-03-01 12:30
f3,dinner,Grilled trout,560,40,20,28,2024-03-01 19:00
f4,breakfast,Yogurt bowl,280,15,32,8,2024-03-02 08:10
f5,lunch,Chicken wrap,610,38,60,20,2024-03-02 13:00
f6,dinner,Bean chili,520,28,64,12,2024-03-02 19:30
`

const measurementsCSV = `id,kind,value,unit,taken_at,note
m1,weight,72.4,kg,2024-03-01 07:30,
m2,heart rate,61,bpm,2024-03-01 07:32,resting
m3,sleep,7.5,h,2024-03-02 06:45,
`

// startWithFood creates a workspace holding meals.csv and starts the app on it
func startWithFood(t *testing.T, tf *TUITestFramework, args ...string) string {
	t.Helper()
	workspace, err := tf.CreateTestWorkspace()
	if err != nil {
		t.Fatalf("Failed to create test workspace: %v", err)
	}
	if _, err := tf.WriteDataset("meals.csv", foodCSV); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
	if err := tf.StartApp(append(args, "-d", workspace)...); err != nil {
		t.Fatalf("Failed to start app: %v", err)
	}
	if !tf.Ready() {
		tf.DumpTailOnFail(t, "not-ready", 4096)
		t.Fatalf("App did not draw its first page")
	}
	return workspace
}
